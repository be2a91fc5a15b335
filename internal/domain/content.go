package domain

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/lib/pq"
)

// AppendOrder asks the service to place a new row after the existing ones
const AppendOrder = -1

// Scanner is satisfied by *sql.Row and *sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// StringList is a text[] column that also accepts a comma separated string in JSON
type StringList []string

// ParseStringList splits a comma separated value, trimming entries and dropping empty ones
func ParseStringList(raw string) StringList {
	out := StringList{}
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// UnmarshalJSON accepts ["a","b"], "a, b" or null
func (l *StringList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = StringList{}
		return nil
	}

	var csv string
	if err := json.Unmarshal(data, &csv); err == nil {
		*l = ParseStringList(csv)
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("expected an array of strings or a comma separated string")
	}

	out := StringList{}
	for _, item := range items {
		if p := strings.TrimSpace(item); p != "" {
			out = append(out, p)
		}
	}
	*l = out
	return nil
}

// MarshalJSON always renders an array, never null
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return pq.StringArray{}.Value()
	}
	return pq.StringArray(l).Value()
}

// Scan implements sql.Scanner
func (l *StringList) Scan(value interface{}) error {
	var arr pq.StringArray
	if err := arr.Scan(value); err != nil {
		return fmt.Errorf("cannot scan %T into StringList: %w", value, err)
	}
	if arr == nil {
		*l = StringList{}
		return nil
	}
	*l = StringList(arr)
	return nil
}

// OptionalString turns blank input into nil so it is stored as NULL
func OptionalString(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func validateOptionalURL(field string, value *string) error {
	if value == nil {
		return nil
	}
	// site relative paths are served by the frontend
	if strings.HasPrefix(*value, "/") && !strings.HasPrefix(*value, "//") {
		return nil
	}
	if !isHTTPURL(*value) {
		return NewValidationError(fmt.Sprintf("%s must be a valid http(s) URL", field))
	}
	return nil
}

func isHTTPURL(value string) bool {
	if !govalidator.IsURL(value) {
		return false
	}
	u, err := url.Parse(value)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// IDRequest is the body of every delete / mark-as-read style call
type IDRequest struct {
	ID string `json:"id"`
}

func (r *IDRequest) Validate() error {
	r.ID = strings.TrimSpace(r.ID)
	if r.ID == "" {
		return NewValidationError("id is required")
	}
	if len(r.ID) > 64 {
		return NewValidationError("id length must be between 1 and 64")
	}
	return nil
}

// ReorderRequest carries the full desired order of a list
type ReorderRequest struct {
	IDs []string `json:"ids"`
}

func (r *ReorderRequest) Validate() error {
	if len(r.IDs) == 0 {
		return NewValidationError("ids is required")
	}
	seen := make(map[string]struct{}, len(r.IDs))
	for _, id := range r.IDs {
		if strings.TrimSpace(id) == "" {
			return NewValidationError("ids must not contain empty values")
		}
		if _, dup := seen[id]; dup {
			return NewValidationError(fmt.Sprintf("duplicate id in ordering: %s", id))
		}
		seen[id] = struct{}{}
	}
	return nil
}
