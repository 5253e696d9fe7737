// Package itinerary derives day-by-day trip schedules from a planned city
// sequence. Plans are display data only and are regenerated on every
// request; nothing here touches the database.
package itinerary

import "time"

// DayPlan is one generated day of a trip, index-aligned with the city
// sequence it was built from.
type DayPlan struct {
	Day        int        `json:"day"` // 1-based for display
	Date       time.Time  `json:"date"`
	City       string     `json:"city"`
	Activities []Activity `json:"activities"`
}

// BuildPlan produces one DayPlan per city. Day i is dated startDate plus i
// days (plain calendar arithmetic, not timezone-aware). Duplicate cities
// yield duplicate, independently dated days.
func BuildPlan(cities []string, startDate time.Time) []DayPlan {
	plan := make([]DayPlan, len(cities))
	for i, city := range cities {
		plan[i] = DayPlan{
			Day:        i + 1,
			Date:       startDate.AddDate(0, 0, i),
			City:       city,
			Activities: ActivitiesFor(city),
		}
	}
	return plan
}
