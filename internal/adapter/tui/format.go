package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/airfare-routefinder/route-finder/internal/domain"
)

// FormatAirfare renders a fare in rupees with thousands separators, e.g. "₹4,500".
// Paise are shown only when present.
func FormatAirfare(amount float64) string {
	if amount == math.Trunc(amount) {
		return "₹" + humanize.FormatFloat("#,###.", amount)
	}
	return "₹" + humanize.FormatFloat("#,###.##", amount)
}

// FormatDuration renders a duration given in hours, e.g. "2h 30m".
func FormatDuration(hours float64) string {
	minutes := int(math.Round(hours * 60))
	h, m := minutes/60, minutes%60
	switch {
	case m == 0:
		return fmt.Sprintf("%dh", h)
	case h == 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

// FormatConnection renders one connection on a single line.
func FormatConnection(c domain.Connection) string {
	return fmt.Sprintf("%s → %s  %s  %s", c.FromCity, c.ToCity, FormatDuration(c.DurationHours), FormatAirfare(c.Airfare))
}

// RenderPlain renders a search result as unstyled text, one line per connection.
func RenderPlain(result domain.SearchResult) string {
	switch r := result.(type) {
	case domain.Pending:
		return "Searching..."
	case domain.Failed:
		if r.Hint != "" {
			return r.Message + ": " + r.Hint
		}
		return r.Message
	case domain.NoMatches:
		if r.Message != "" {
			return r.Message
		}
		return domain.MsgNoConnection
	case domain.Found:
		lines := make([]string, 0, len(r.Connections))
		for i, c := range r.Connections {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, FormatConnection(c)))
		}
		return strings.Join(lines, "\n")
	default:
		return ""
	}
}
