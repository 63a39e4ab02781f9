package view

const StartMessage = `👋 <b>Deal scanner online</b>

Commands:
/status — scanner state and active filters
/sort_discount — rank deals by discount
/sort_value — rank deals by value
/filter_price <code>min</code> <code>max</code> — keep deals priced within bounds
/filter_type <code>type...</code> — keep only the listed item types`

const (
	ScanQueued        = "🔍 Scan queued."
	ScanAlreadyQueued = "⏳ Scan already queued."

	FilterPriceUsage   = "❌ Usage: /filter_price <code>min</code> <code>max</code>"
	FilterPriceInvalid = "❌ Bounds must be whole numbers with min ≤ max"
	FilterTypeUsage    = "❌ Usage: /filter_type <code>type...</code> (no arguments clears the filter)"
)
