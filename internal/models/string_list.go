package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StringList ensures tag fields can be decoded whether stored as a single
// string or an array of strings.
type StringList []string

// UnmarshalJSON accepts both string and array values, allowing legacy
// records to be decoded without failing the entire document.
func (s *StringList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*s = nil
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var values []string
		if err := json.Unmarshal(data, &values); err != nil {
			return err
		}
		*s = values
		return nil
	}

	if strings.HasPrefix(trimmed, "\"") {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}

		value = strings.TrimSpace(value)
		if value == "" {
			*s = []string{}
			return nil
		}

		*s = []string{value}
		return nil
	}

	return fmt.Errorf("cannot decode %s into StringList", trimmed)
}

// MarshalJSON always stores the list as an array, keeping new writes
// consistent even when legacy records used a string value.
func (s StringList) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	return json.Marshal([]string(s))
}
