package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tripplanner/internal/dto"
)

// ErrorHandler renders every error as {"message": ...} so the frontend can
// read one field regardless of which handler failed.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	_ = c.JSON(code, dto.ErrorResponse{Message: msg})
}
