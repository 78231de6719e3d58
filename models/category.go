package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"ctgapi/shared"
)

// Category is one record of the category dataset. Keys other than id and
// title are kept verbatim in Attributes and written back on encode.
type Category struct {
	Id         int32                      `json:"id"`
	Title      string                     `json:"title" validate:"required"`
	Attributes map[string]json.RawMessage `json:"-"`
}

func (ctg *Category) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		return fmt.Errorf("category must be an object, got %s", data)
	}

	rawId, ok := fields["id"]
	if !ok || isNull(rawId) {
		return fmt.Errorf("category is missing field %q", "id")
	}
	var id int32
	if err := json.Unmarshal(rawId, &id); err != nil {
		return fmt.Errorf("category id %s is not an integer: %w", rawId, err)
	}

	rawTitle, ok := fields["title"]
	if !ok || isNull(rawTitle) {
		return fmt.Errorf("category %d is missing field %q", id, "title")
	}
	var title string
	if err := json.Unmarshal(rawTitle, &title); err != nil {
		return fmt.Errorf("category %d title is not a string: %w", id, err)
	}

	delete(fields, "id")
	delete(fields, "title")
	if len(fields) == 0 {
		fields = nil
	}

	ctg.Id = id
	ctg.Title = title
	ctg.Attributes = fields
	return nil
}

func (ctg Category) MarshalJSON() ([]byte, error) {
	fields := make(map[string]any, len(ctg.Attributes)+2)
	for k, v := range ctg.Attributes {
		fields[k] = v
	}
	fields["id"] = ctg.Id
	fields["title"] = ctg.Title

	return json.Marshal(fields)
}

// Clone returns a copy that shares no memory with ctg.
func (ctg Category) Clone() Category {
	clone := ctg
	if ctg.Attributes != nil {
		clone.Attributes = make(map[string]json.RawMessage, len(ctg.Attributes))
		for k, v := range ctg.Attributes {
			clone.Attributes[k] = append(json.RawMessage(nil), v...)
		}
	}
	return clone
}

func (ctg Category) Validate() error {
	return shared.Validate.Struct(ctg)
}

// DecodeCategories parses a JSON array of categories, keeping array order.
func DecodeCategories(data []byte) ([]Category, error) {
	var categories []Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
