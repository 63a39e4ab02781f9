package deals

import (
	"sort"

	"github.com/samber/lo"

	"deals_bot/internal/domain/entity"
)

const DefaultMinDiscount = 10.0

// SortKey selects the ranking field. Empty keeps the activity feed order.
type SortKey string

const (
	SortNone     SortKey = ""
	SortDiscount SortKey = "discount"
	SortValue    SortKey = "value"
)

// Options are the filter criteria for one reconciliation cycle. Zero bounds
// mean unbounded, an empty type list means unfiltered.
type Options struct {
	MinDiscount float64
	PriceMin    *int64
	PriceMax    *int64
	ItemTypes   []string
	Sort        SortKey
}

func DefaultOptions() Options {
	return Options{MinDiscount: DefaultMinDiscount}
}

// Filter joins the activity feed against the catalog and keeps the qualifying
// deals. Activities whose item id is absent from the catalog are skipped
// silently. Output order follows the feed unless a sort key is set.
func Filter(activities []entity.Activity, items map[string]entity.ItemDetails, opts Options) []entity.Deal {
	var result []entity.Deal

	for _, activity := range activities {
		details, ok := items[activity.ItemID]
		if !ok {
			continue
		}

		value := details.AssessedValue()
		if value <= 0 {
			continue
		}

		discount := float64(value-activity.Price) / float64(value) * 100
		if discount < opts.MinDiscount {
			continue
		}

		if opts.PriceMin != nil && activity.Price < *opts.PriceMin {
			continue
		}

		if opts.PriceMax != nil && activity.Price > *opts.PriceMax {
			continue
		}

		if len(opts.ItemTypes) > 0 && !lo.Contains(opts.ItemTypes, details.ItemType) {
			continue
		}

		result = append(result, entity.Deal{
			ID:       activity.ItemID,
			Name:     details.Name,
			ItemType: details.ItemType,
			Value:    value,
			RAP:      details.RAP,
			Price:    activity.Price,
			Discount: discount,
		})
	}

	rank(result, opts.Sort)

	return result
}

// rank sorts descending on the chosen field. The sort is stable so feed order
// breaks ties.
func rank(deals []entity.Deal, key SortKey) {
	switch key {
	case SortDiscount:
		sort.SliceStable(deals, func(i, j int) bool {
			return deals[i].Discount > deals[j].Discount
		})
	case SortValue:
		sort.SliceStable(deals, func(i, j int) bool {
			return deals[i].Value > deals[j].Value
		})
	case SortNone:
	}
}
