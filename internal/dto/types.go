package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// dateLayout is the wire format for due dates: date-only ISO 8601
const dateLayout = "2006-01-02"

var jsonNull = []byte("null")

// NullableUUID distinguishes an absent JSON field from an explicit null.
// Set is true when the field appeared in the request body; Value is nil
// for an explicit null.
type NullableUUID struct {
	Set   bool
	Value *uuid.UUID
}

// UnmarshalJSON implements json.Unmarshaler
func (n *NullableUUID) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, jsonNull) {
		n.Value = nil
		return nil
	}
	var id uuid.UUID
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	n.Value = &id
	return nil
}

// NullableDate distinguishes an absent date field from an explicit null.
// Dates travel as "YYYY-MM-DD" strings.
type NullableDate struct {
	Set   bool
	Value *time.Time
}

// UnmarshalJSON implements json.Unmarshaler
func (n *NullableDate) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, jsonNull) {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := ParseDate(s)
	if err != nil {
		return err
	}
	n.Value = &t
	return nil
}

// FormatDate renders a due date in the wire format, nil-safe
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// ParseDate parses a wire-format date string
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
