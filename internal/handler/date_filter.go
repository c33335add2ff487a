package handler

import (
	"net/http"
	"time"
)

const dateLayout = "2006-01-02"

// dateQuery returns the validated value of a YYYY-MM-DD query parameter,
// or "" when the parameter is absent.
func dateQuery(r *http.Request, key string) (string, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return "", nil
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		return "", err
	}
	return value, nil
}
