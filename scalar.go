package pretty

import (
	"strconv"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// quote returns s as a Go string literal, cut to the configured display
// width first.
func (r *Renderer) quote(s string) string {
	return strconv.Quote(truncate(s, r.maxWidth))
}

func truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= runewidth.StringWidth(ellipsis) {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, ellipsis)
}
