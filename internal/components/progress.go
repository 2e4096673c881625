package components

import (
	"math"

	"github.com/charmbracelet/bubbles/progress"
)

// UsageBar renders a usage ratio as a solid bar of the given colour.
type UsageBar struct {
	bar progress.Model
}

// NewUsageBar creates a bar of width cells filled with hex.
func NewUsageBar(width int, hex string) UsageBar {
	bar := progress.New(
		progress.WithSolidFill(hex),
		progress.WithoutPercentage(),
		progress.WithWidth(max(width, 1)),
	)
	return UsageBar{bar: bar}
}

// View renders the bar at ratio, clamped to [0, 1].
func (u UsageBar) View(ratio float64) string {
	return u.bar.ViewAs(math.Max(0, math.Min(1, ratio)))
}

// LimitRowData is one usage meter. Current is nil for caps that have no usage figure.
type LimitRowData struct {
	Label   string
	Current *int
	Max     int
	Color   string
	Bar     bool
}

// LimitValue formats a meter's value: "$230/ $500" with usage, "$200" without.
func LimitValue(current *int, maxValue int) string {
	if current == nil {
		return Dollars(maxValue)
	}
	return Dollars(*current) + "/ " + Dollars(maxValue)
}

// LimitRatio is the filled fraction of a meter, 1 when there is no usage figure.
func LimitRatio(current *int, maxValue int) float64 {
	if current == nil || maxValue <= 0 {
		return 1
	}
	return float64(*current) / float64(maxValue)
}

// LimitRow renders a labelled cap, optionally with a usage bar underneath.
func LimitRow(c Context, d LimitRowData) string {
	s := c.Styles
	width := c.Inner()
	line := Spread(width, s.TextMuted.Render(d.Label), s.TextPrimary.Render(LimitValue(d.Current, d.Max)))
	if !d.Bar {
		return line
	}

	color := d.Color
	if color == "" {
		color = c.Value().Colors.PurpleSecondary
	}
	return line + "\n" + NewUsageBar(width, color).View(LimitRatio(d.Current, d.Max))
}
