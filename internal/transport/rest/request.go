package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

const dateLayout = "2006-01-02"

// decodeBody reads a JSON body into dst. An empty body leaves dst untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return domain.NewValidationError("body", "too large or unreadable")
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, dst); err != nil {
		var te *json.UnmarshalTypeError
		if errors.As(err, &te) && te.Field != "" {
			return domain.NewValidationError(te.Field, "invalid type")
		}
		var pe *timeParseError
		if errors.As(err, &pe) {
			return domain.NewValidationError("date", pe.Error())
		}
		return domain.NewValidationError("body", "invalid JSON")
	}
	return nil
}

// jsonTime accepts either a calendar date (YYYY-MM-DD) or an RFC 3339
// timestamp.
type jsonTime struct {
	time.Time
}

type timeParseError struct {
	value string
}

func (e *timeParseError) Error() string {
	return fmt.Sprintf("%q is not a YYYY-MM-DD date or RFC 3339 timestamp", e.value)
}

func (t *jsonTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return &timeParseError{value: string(b)}
	}
	parsed, err := parseTime(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func parseTime(s string) (time.Time, error) {
	if d, err := time.Parse(dateLayout, s); err == nil {
		return d, nil
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	return time.Time{}, &timeParseError{value: s}
}

// ptr converts an optional request time to the domain form.
func (t *jsonTime) ptr() *time.Time {
	if t == nil {
		return nil
	}
	v := t.Time
	return &v
}

// queryDay is queryTime that also reports whether the value was a bare
// calendar date rather than a timestamp.
func queryDay(r *http.Request, key string) (*time.Time, bool, error) {
	t, err := queryTime(r, key)
	if err != nil || t == nil {
		return t, false, err
	}
	return t, len(trimmedQuery(r, key)) == len(dateLayout), nil
}

// queryTime parses an optional date query parameter.
func queryTime(r *http.Request, key string) (*time.Time, error) {
	raw := trimmedQuery(r, key)
	if raw == "" {
		return nil, nil
	}
	t, err := parseTime(raw)
	if err != nil {
		return nil, domain.NewValidationError(key, err.Error())
	}
	return &t, nil
}
