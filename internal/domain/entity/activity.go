package entity

import (
	"fmt"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// Activity is one recent-trade record from the market activity feed. The feed
// serializes records as positional arrays; only the item id (index 2) and the
// trade price (index 3) are consumed.
type Activity struct {
	ItemID string
	Price  int64
}

const activityMinFields = 4

func (a *Activity) UnmarshalJSON(data []byte) error {
	var fields []jsoniter.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("activity array: %w", err)
	}

	if len(fields) < activityMinFields {
		return fmt.Errorf("activity array: %d fields, want at least %d", len(fields), activityMinFields)
	}

	var itemID int64
	if err := json.Unmarshal(fields[2], &itemID); err != nil {
		return fmt.Errorf("activity item id: %w", err)
	}

	if err := json.Unmarshal(fields[3], &a.Price); err != nil {
		return fmt.Errorf("activity price: %w", err)
	}

	// Catalog keys are strings, activity ids are numbers. Normalize here so
	// the join is a plain map lookup.
	a.ItemID = strconv.FormatInt(itemID, 10)

	return nil
}
