package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

// Spread places left and right on one line of the given width, truncating left
// when the two do not fit.
func Spread(width int, left, right string) string {
	lw, rw := lipgloss.Width(left), lipgloss.Width(right)
	gap := width - lw - rw
	if gap < 1 {
		avail := width - rw - 1
		if avail < 1 {
			return right
		}
		left = truncate.StringWithTail(left, uint(avail), "…")
		gap = width - lipgloss.Width(left) - rw
		if gap < 1 {
			gap = 1
		}
	}
	return left + strings.Repeat(" ", gap) + right
}

// Center centres s on a line of the given width.
func Center(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

// Wrap word-wraps plain text to width.
func Wrap(width int, s string) string {
	if width <= 0 {
		return s
	}
	return wordwrap.String(s, width)
}

// Stack joins blocks vertically, dropping empty ones.
func Stack(blocks ...string) string {
	kept := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b != "" {
			kept = append(kept, b)
		}
	}
	return strings.Join(kept, "\n")
}

// Gap returns n blank lines for use inside Stack.
func Gap(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("\n", n-1) + " "
}

// Indent prefixes every line of s with n spaces.
func Indent(n int, s string) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
