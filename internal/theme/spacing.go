package theme

import "time"

// SpacingSize enumerates the spacing scale (base unit 4).
type SpacingSize int

const (
	SpacingXS SpacingSize = iota
	SpacingSM
	SpacingMD
	SpacingLG
	SpacingXL
	Spacing2XL
	Spacing3XL
	Spacing4XL
	Spacing5XL
)

const spacingSizeCount = int(Spacing5XL) + 1

// SpacingScale maps every SpacingSize to points.
type SpacingScale [spacingSizeCount]int

// DefaultSpacing is the prototype spacing scale.
var DefaultSpacing = SpacingScale{
	SpacingXS:  4,
	SpacingSM:  8,
	SpacingMD:  12,
	SpacingLG:  16,
	SpacingXL:  20,
	Spacing2XL: 24,
	Spacing3XL: 32,
	Spacing4XL: 40,
	Spacing5XL: 48,
}

// Value returns the points for size, falling back to the medium step for unknown sizes.
func (s SpacingScale) Value(size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(s) {
		index = int(SpacingMD)
	}
	return s[index]
}

// Cells converts a spacing step into terminal cells. One cell covers 8 points.
func (s SpacingScale) Cells(size SpacingSize) int {
	return s.Value(size) / 8
}

// RadiusSize enumerates border radii.
type RadiusSize int

const (
	RadiusSM RadiusSize = iota
	RadiusMD
	RadiusLG
	RadiusXL
	Radius2XL
	RadiusFull
)

const radiusSizeCount = int(RadiusFull) + 1

// RadiusScale maps every RadiusSize to points.
type RadiusScale [radiusSizeCount]int

// DefaultRadius is the prototype radius scale.
var DefaultRadius = RadiusScale{
	RadiusSM:   4,
	RadiusMD:   8,
	RadiusLG:   12,
	RadiusXL:   16,
	Radius2XL:  20,
	RadiusFull: 9999,
}

// Value returns the radius for size, falling back to the medium step.
func (r RadiusScale) Value(size RadiusSize) int {
	index := int(size)
	if index < 0 || index >= len(r) {
		index = int(RadiusMD)
	}
	return r[index]
}

// Rounded reports whether a radius should be drawn with rounded terminal borders.
func (r RadiusScale) Rounded(size RadiusSize) bool {
	return r.Value(size) >= r[RadiusLG]
}

// IconSize in points.
var IconSize = struct {
	SM, MD, LG, XL int
}{SM: 16, MD: 20, LG: 24, XL: 32}

// ComponentHeight in points.
var ComponentHeight = struct {
	Header, TabBar, BalanceCard, ActivityRow int
}{Header: 100, TabBar: 72, BalanceCard: 280, ActivityRow: 72}

// SafeArea insets in points.
var SafeArea = struct {
	Top, Bottom int
}{Top: 47, Bottom: 34}

// ZIndex layers.
var ZIndex = struct {
	Base, Card, Sticky, Modal, Toast int
}{Base: 0, Card: 10, Sticky: 20, Modal: 50, Toast: 100}

// Duration of animations.
var Duration = struct {
	Fast, Normal, Slow time.Duration
}{Fast: 150 * time.Millisecond, Normal: 250 * time.Millisecond, Slow: 400 * time.Millisecond}

// PhoneFrame is the prototype device size (iPhone 14 Pro) in points.
var PhoneFrame = struct {
	Width, Height int
}{Width: 393, Height: 852}
