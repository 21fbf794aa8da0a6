package models

import (
	"database/sql"
	"encoding/json"
)

// DecodeJSONList decodes a JSON array column. NULL, empty and malformed
// values all decode to an empty, non-nil slice.
func DecodeJSONList[T any](raw sql.NullString) []T {
	out := []T{}
	if !raw.Valid || raw.String == "" {
		return out
	}
	var decoded []T
	if err := json.Unmarshal([]byte(raw.String), &decoded); err != nil || decoded == nil {
		return out
	}
	return decoded
}
