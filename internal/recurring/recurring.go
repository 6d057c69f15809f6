package recurring

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// MonthlyRule returns the RRULE for a transaction recurring on the given day
// of month. Days 29-31 don't exist in every month; rrule would silently skip
// those months, so occurrences for them are clamped to the month's last day
// by OccurrencesBetween instead of going through rrule.
func MonthlyRule(dayOfMonth int, dtstart time.Time) (*rrule.RRule, error) {
	if dayOfMonth < 1 || dayOfMonth > 31 {
		return nil, fmt.Errorf("day of month out of range: %d", dayOfMonth)
	}
	return rrule.NewRRule(rrule.ROption{
		Freq:       rrule.MONTHLY,
		Bymonthday: []int{dayOfMonth},
		Dtstart:    dtstart,
	})
}

// OccurrencesBetween returns the occurrence dates of a monthly day-of-month
// schedule in (after, until], normalized to midnight UTC.
func OccurrencesBetween(dayOfMonth int, after, until time.Time) ([]time.Time, error) {
	if dayOfMonth < 1 || dayOfMonth > 31 {
		return nil, fmt.Errorf("day of month out of range: %d", dayOfMonth)
	}

	after = midnight(after)
	until = midnight(until)

	if dayOfMonth > 28 {
		return clampedOccurrences(dayOfMonth, after, until), nil
	}

	rule, err := MonthlyRule(dayOfMonth, after)
	if err != nil {
		return nil, err
	}

	var results []time.Time
	for _, occ := range rule.Between(after, until, true) {
		occ = midnight(occ)
		if occ.After(after) {
			results = append(results, occ)
		}
	}
	return results, nil
}

// NextOccurrence returns the first occurrence strictly after the given time.
func NextOccurrence(dayOfMonth int, after time.Time) (time.Time, error) {
	occs, err := OccurrencesBetween(dayOfMonth, after, after.AddDate(0, 2, 0))
	if err != nil {
		return time.Time{}, err
	}
	if len(occs) == 0 {
		return time.Time{}, fmt.Errorf("no occurrence found for day %d", dayOfMonth)
	}
	return occs[0], nil
}

// clampedOccurrences walks month by month, placing each occurrence on the
// requested day or, for months too short, on the month's last day.
func clampedOccurrences(dayOfMonth int, after, until time.Time) []time.Time {
	var results []time.Time
	year, month := after.Year(), after.Month()
	for i := 0; i < 1000; i++ {
		day := dayOfMonth
		if last := lastDayOfMonth(year, month); day > last {
			day = last
		}
		occ := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		if occ.After(until) {
			break
		}
		if occ.After(after) {
			results = append(results, occ)
		}
		month++
		if month > time.December {
			month = time.January
			year++
		}
	}
	return results
}

func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
