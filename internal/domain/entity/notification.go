package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// Availability is the storefront sold-status heuristic result. The scrape is
// fragile, so "unknown" is a first-class outcome and the reconciler decides
// how to render it.
type Availability int

const (
	AvailabilityUnknown Availability = iota
	AvailabilityAvailable
	AvailabilitySold
)

func (a Availability) String() string {
	switch a {
	case AvailabilityAvailable:
		return "available"
	case AvailabilitySold:
		return "sold"
	default:
		return "unknown"
	}
}

// Tier is the visual urgency band of a deal, derived from its discount.
type Tier int

const (
	TierNone Tier = iota
	TierLow       // >= 10% off
	TierMid       // >= 20% off
	TierHot       // >= 30% off
)

func TierFor(discount float64) Tier {
	switch {
	case discount >= 30:
		return TierHot
	case discount >= 20:
		return TierMid
	case discount >= 10:
		return TierLow
	default:
		return TierNone
	}
}

// NotificationState tracks the lifecycle of a posted deal message.
type NotificationState int

const (
	StateOpen   NotificationState = iota
	StateSold                     // storefront reported the item gone at post/edit time
	StateClosed                   // deal left the feed; message retired by the close-out pass
)

// Notification is the rendered form of a deal message: everything needed to
// produce the chat text, kept structured so the close-out pass can transform
// a previously sent message in place.
type Notification struct {
	DealID   string
	Name     string
	Value    int64
	RAP      int64
	Price    int64
	Discount float64
	ImageURL string
	ItemURL  string
	Tier     Tier
	State    NotificationState
}

// MarkClosed flips the notification to its retired visual state.
func (n *Notification) MarkClosed() {
	n.State = StateClosed
}

func (n Notification) Title() string {
	if n.State == StateSold || n.State == StateClosed {
		return "❌ SOLD: " + n.Name
	}
	return "🔥 Deal Found: " + n.Name
}

func (n Notification) badge() string {
	if n.State == StateClosed {
		return "🔴"
	}

	switch n.Tier {
	case TierHot:
		return "🟣"
	case TierMid:
		return "🟢"
	case TierLow:
		return "⚪"
	default:
		return "▫️"
	}
}

// HTML renders the notification body for a Telegram HTML-mode message. The
// leading zero-width link makes the client show the thumbnail as the preview.
func (n Notification) HTML() string {
	var sb strings.Builder

	if n.ImageURL != "" {
		fmt.Fprintf(&sb, "<a href=%q>&#8203;</a>", n.ImageURL)
	}

	fmt.Fprintf(&sb, "%s <b>%s</b>\n\n", n.badge(), n.Title())
	fmt.Fprintf(&sb, "<b>Value:</b> %s\n", groupDigits(n.Value))
	fmt.Fprintf(&sb, "<b>RAP:</b> %s\n", groupDigits(n.RAP))
	fmt.Fprintf(&sb, "<b>Price:</b> %s\n", groupDigits(n.Price))
	fmt.Fprintf(&sb, "<b>Discount:</b> %.2f%% off\n", n.Discount)

	if n.ItemURL != "" {
		fmt.Fprintf(&sb, "\n🔗 <a href=%q>View on Roblox</a>", n.ItemURL)
	}

	return sb.String()
}

func groupDigits(v int64) string {
	s := strconv.FormatInt(v, 10)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var sb strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}

	if neg {
		return "-" + sb.String()
	}

	return sb.String()
}
