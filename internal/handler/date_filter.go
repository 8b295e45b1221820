package handler

import (
	"net/http"
	"time"
)

const dateLayout = "2006-01-02"

// parseDateQuery reads a yyyy-mm-dd query value as midnight in loc. Range
// bounds and day bucketing must share the same zone, so callers pass the
// location they aggregate in.
func parseDateQuery(r *http.Request, key string, loc *time.Location) (*time.Time, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation(dateLayout, value, loc)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// endOfDay pushes a parsed date to the last instant of that calendar day so
// range upper bounds stay inclusive.
func endOfDay(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	end := t.Add(24*time.Hour - time.Nanosecond)
	return &end
}

func orLocal(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}
