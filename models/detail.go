package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Detail is an arbitrary JSON value attached to a category.
type Detail json.RawMessage

func (d Detail) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("null"), nil
	}
	return append([]byte(nil), d...), nil
}

func (d *Detail) UnmarshalJSON(data []byte) error {
	*d = append((*d)[0:0], data...)
	return nil
}

func (d Detail) Clone() Detail {
	if d == nil {
		return nil
	}
	return append(Detail(nil), d...)
}

// DecodeDetails parses a JSON object keyed by category id. Keys must be the
// canonical decimal form of an int32.
func DecodeDetails(data []byte) (map[int32]Detail, error) {
	var raw map[string]Detail
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	details := make(map[int32]Detail, len(raw))
	for key, value := range raw {
		id, ok := ParseId(key)
		if !ok {
			return nil, fmt.Errorf("detail key %q is not a category id", key)
		}
		details[id] = value
	}
	return details, nil
}

// ParseId accepts only the canonical decimal form of an int32: no sign
// prefix other than '-', no leading zeros, no whitespace.
func ParseId(s string) (int32, bool) {
	id, err := strconv.ParseInt(s, 10, 32)
	if err != nil || strconv.FormatInt(id, 10) != s {
		return 0, false
	}
	return int32(id), true
}
