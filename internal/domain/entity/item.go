package entity

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// ItemDetails is one catalog record, keyed by item id in the catalog envelope.
// Positional array: index 0 name, 1 item type, 2 recent-average-price,
// 4 value. A value of -1 means the item has no authoritative value.
type ItemDetails struct {
	Name     string
	ItemType string
	RAP      int64
	Value    int64
}

const itemMinFields = 5

// AssessedValue falls back to RAP when no authoritative value is set.
func (d ItemDetails) AssessedValue() int64 {
	if d.Value == -1 {
		return d.RAP
	}
	return d.Value
}

func (d *ItemDetails) UnmarshalJSON(data []byte) error {
	var fields []jsoniter.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("item array: %w", err)
	}

	if len(fields) < itemMinFields {
		return fmt.Errorf("item array: %d fields, want at least %d", len(fields), itemMinFields)
	}

	if err := json.Unmarshal(fields[0], &d.Name); err != nil {
		return fmt.Errorf("item name: %w", err)
	}

	if err := json.Unmarshal(fields[1], &d.ItemType); err != nil {
		return fmt.Errorf("item type: %w", err)
	}

	if err := json.Unmarshal(fields[2], &d.RAP); err != nil {
		return fmt.Errorf("item rap: %w", err)
	}

	if err := json.Unmarshal(fields[4], &d.Value); err != nil {
		return fmt.Errorf("item value: %w", err)
	}

	return nil
}
