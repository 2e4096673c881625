package theme

// FontFamily used by every preset.
const FontFamily = "Inter"

// FontWeight mirrors CSS numeric weights.
type FontWeight int

const (
	FontWeightRegular  FontWeight = 400
	FontWeightMedium   FontWeight = 500
	FontWeightSemibold FontWeight = 600
	FontWeightBold     FontWeight = 700
)

// Bold reports whether the weight renders bold in a terminal.
func (w FontWeight) Bold() bool {
	return w >= FontWeightSemibold
}

// FontSize in points.
var FontSize = struct {
	DisplayBalance, Heading, Body, BodySecondary, Caption float64
}{
	DisplayBalance: 35,
	Heading:        14,
	Body:           13,
	BodySecondary:  12,
	Caption:        10,
}

// LineHeight factors.
var LineHeight = struct {
	Tight, Normal float64
}{Tight: 1.2, Normal: 1.4}

// TypographyStyle is one composed text preset.
type TypographyStyle struct {
	FontFamily string
	FontSize   float64
	FontWeight FontWeight
	LineHeight float64
}

// TypographyVariant names a preset.
type TypographyVariant int

const (
	TypographyDisplayBalance TypographyVariant = iota
	TypographyHeading
	TypographyBody
	TypographyBodySecondary
	TypographyCaption
)

// Typography groups the composed presets. It does not depend on the mode.
type Typography struct {
	DisplayBalance TypographyStyle
	Heading        TypographyStyle
	Body           TypographyStyle
	BodySecondary  TypographyStyle
	Caption        TypographyStyle
}

func preset(size float64, weight FontWeight, lineHeight float64) TypographyStyle {
	return TypographyStyle{
		FontFamily: FontFamily,
		FontSize:   size,
		FontWeight: weight,
		LineHeight: size * lineHeight,
	}
}

// DefaultTypography is the shared typography table.
var DefaultTypography = Typography{
	DisplayBalance: preset(FontSize.DisplayBalance, FontWeightRegular, LineHeight.Tight),
	Heading:        preset(FontSize.Heading, FontWeightMedium, LineHeight.Normal),
	Body:           preset(FontSize.Body, FontWeightMedium, LineHeight.Normal),
	BodySecondary:  preset(FontSize.BodySecondary, FontWeightMedium, LineHeight.Normal),
	Caption:        preset(FontSize.Caption, FontWeightRegular, LineHeight.Normal),
}

// Style returns the preset for variant, defaulting to Body.
func (t Typography) Style(variant TypographyVariant) TypographyStyle {
	switch variant {
	case TypographyDisplayBalance:
		return t.DisplayBalance
	case TypographyHeading:
		return t.Heading
	case TypographyBodySecondary:
		return t.BodySecondary
	case TypographyCaption:
		return t.Caption
	default:
		return t.Body
	}
}
