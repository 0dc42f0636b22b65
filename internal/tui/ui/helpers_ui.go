package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// lineBreaks folds characters that would split a row into spaces. Task text
// from a hand-edited file may contain them.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

// truncateString fits s on one line of at most width cells, ending in "…"
// when cut. Wide characters are measured with runewidth.
func truncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(lineBreaks.Replace(s), width, "…")
}
