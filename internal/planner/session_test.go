package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func draftedSession(cities ...string) *Session {
	return &Session{
		ID: "sess-1",
		Draft: &Draft{
			State:           "Goa",
			Cities:          cities,
			NumPeople:       2,
			BudgetPerPerson: 15000,
			StartDate:       time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		},
		Selections: NewSelections(),
	}
}

func TestSession_TotalDays(t *testing.T) {
	assert.Equal(t, 0, (&Session{}).TotalDays())
	assert.Equal(t, 2, draftedSession("Calangute", "Panaji").TotalDays())
}

func TestSession_Select_Overwrites(t *testing.T) {
	s := draftedSession("Calangute")

	s.Select(0, "7", "", "")
	assert.Equal(t, "7", s.Selections.Hotels[0])

	s.Select(0, "9", "", "")
	assert.Equal(t, "9", s.Selections.Hotels[0])
}

func TestSession_Select_EmptyLeavesExisting(t *testing.T) {
	s := draftedSession("Calangute")

	s.Select(0, "7", "3", "2")
	s.Select(0, "", "4", "")

	assert.Equal(t, "7", s.Selections.Hotels[0])
	assert.Equal(t, "4", s.Selections.Transport[0])
	assert.Equal(t, "2", s.Selections.Guides[0])
}

func TestSession_Complete_RequiresAllCategoriesEachDay(t *testing.T) {
	s := draftedSession("Calangute", "Panaji")

	s.Select(0, "7", "3", "2")
	assert.True(t, s.DayComplete(0))
	assert.False(t, s.Complete())

	s.Select(1, "8", "3", "")
	assert.False(t, s.DayComplete(1))
	assert.False(t, s.Complete())

	s.Select(1, "", "", "5")
	assert.True(t, s.Complete())
}

func TestSession_Complete_NoDraft(t *testing.T) {
	s := &Session{Selections: NewSelections()}
	assert.False(t, s.Complete())
}
