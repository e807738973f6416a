package controllers

import (
	"fmt"
	"time"

	"backend/utils"
)

const dateLayout = "2006-01-02"

// parseDateWindow turns from/to date strings into an inclusive time window.
// An empty to means a single-day window on from.
func parseDateWindow(fromStr, toStr string) (time.Time, time.Time, error) {
	if fromStr == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("missing 'from' date (YYYY-MM-DD)")
	}
	from, err := time.ParseInLocation(dateLayout, fromStr, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid 'from' date, use YYYY-MM-DD")
	}
	to := from
	if toStr != "" {
		to, err = time.ParseInLocation(dateLayout, toStr, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid 'to' date, use YYYY-MM-DD")
		}
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("'to' date is before 'from' date")
	}
	return utils.StartOfDay(from), utils.EndOfDay(to), nil
}
