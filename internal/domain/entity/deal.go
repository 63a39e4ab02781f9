package entity

import (
	"fmt"
	"strings"
)

// Deal is a qualifying listing: an item trading below its assessed value by at
// least the configured discount. Recomputed from scratch every cycle.
type Deal struct {
	ID       string
	Name     string
	ItemType string
	Value    int64
	RAP      int64
	Price    int64
	Discount float64 // percent off the assessed value
}

// CatalogURL is the public storefront page for the item.
func (d Deal) CatalogURL(base string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(base, "/"), d.ID, strings.ReplaceAll(d.Name, " ", "-"))
}
