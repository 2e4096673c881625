package theme

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Mode selects one of the two colour tables.
type Mode string

const (
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
)

// DefaultMode is used when a provider is created without an explicit mode.
const DefaultMode = ModeDark

// Modes lists the supported selectors in display order.
func Modes() []Mode {
	return []Mode{ModeDark, ModeLight}
}

// ParseMode converts user input (flags, config) into a Mode.
func ParseMode(value string) (Mode, error) {
	switch Mode(value) {
	case ModeDark, ModeLight:
		return Mode(value), nil
	case "":
		return DefaultMode, nil
	default:
		return "", fmt.Errorf("unknown theme %q (want dark or light)", value)
	}
}

// Toggled returns the opposite mode. Anything that is not dark flips to dark.
func (m Mode) Toggled() Mode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}

// Label is the human readable name shown in settings.
func (m Mode) Label() string {
	if m == ModeDark {
		return "Dark"
	}
	return "Light"
}

// Brand colours shared by both tables.
const (
	BrandPurplePrimary   = "#4612B4"
	BrandPurpleSecondary = "#9662FF"
	BrandPurpleLight     = "#6430D2"
)

// Colors holds every named colour slot. Dark and light tables share this schema.
type Colors struct {
	BgPrimary   string `slot:"bgPrimary" validate:"required,hexcolor"`
	BgSecondary string `slot:"bgSecondary" validate:"required,hexcolor"`
	BgElevated  string `slot:"bgElevated" validate:"required,hexcolor"`

	TextPrimary   string `slot:"textPrimary" validate:"required,hexcolor"`
	TextSecondary string `slot:"textSecondary" validate:"required,hexcolor"`
	TextMuted     string `slot:"textMuted" validate:"required,hexcolor"`
	TextAmount    string `slot:"textAmount" validate:"required,hexcolor"`
	TextLink      string `slot:"textLink" validate:"required,hexcolor"`

	IconDefault string `slot:"iconDefault" validate:"required,hexcolor"`
	IconActive  string `slot:"iconActive" validate:"required,hexcolor"`

	Border string `slot:"border" validate:"required,hexcolor"`

	PurplePrimary   string `slot:"purplePrimary" validate:"required,hexcolor"`
	PurpleSecondary string `slot:"purpleSecondary" validate:"required,hexcolor"`
	PurpleLight     string `slot:"purpleLight" validate:"required,hexcolor"`
}

// DarkColors is the dark table.
var DarkColors = Colors{
	BgPrimary:   "#18181B",
	BgSecondary: "#1B1B1E",
	BgElevated:  "#262629",

	TextPrimary:   "#F8FAFC",
	TextSecondary: "#A59CB9",
	TextMuted:     "#A1A1AA",
	TextAmount:    "#E1E1E1",
	TextLink:      "#A1A1AA",

	IconDefault: "#3F3F46",
	IconActive:  "#6430D2",

	Border: "#262629",

	PurplePrimary:   BrandPurplePrimary,
	PurpleSecondary: BrandPurpleSecondary,
	PurpleLight:     BrandPurpleLight,
}

// LightColors is the light table.
var LightColors = Colors{
	BgPrimary:   "#F8F8FC",
	BgSecondary: "#FFFFFF",
	BgElevated:  "#D9E0F1",

	TextPrimary:   "#27272A",
	TextSecondary: "#3F3F46",
	TextMuted:     "#6B7280",
	TextAmount:    "#27272A",
	TextLink:      "#52525B",

	IconDefault: "#D5D9DD",
	IconActive:  "#4612B4",

	Border: "#D9E0F1",

	PurplePrimary:   BrandPurplePrimary,
	PurpleSecondary: BrandPurpleSecondary,
	PurpleLight:     BrandPurpleLight,
}

// ColorsFor returns the table for a mode. Unknown modes resolve to the light table.
func ColorsFor(mode Mode) Colors {
	if mode == ModeDark {
		return DarkColors
	}
	return LightColors
}

var (
	slotOnce  sync.Once
	slotNames []string
	slotIndex map[string]int
)

func loadSlots() {
	slotOnce.Do(func() {
		t := reflect.TypeOf(Colors{})
		slotNames = make([]string, 0, t.NumField())
		slotIndex = make(map[string]int, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			name := t.Field(i).Tag.Get("slot")
			slotNames = append(slotNames, name)
			slotIndex[name] = i
		}
	})
}

// ColorSlots returns the slot names of the colour schema in declaration order.
func ColorSlots() []string {
	loadSlots()
	out := make([]string, len(slotNames))
	copy(out, slotNames)
	return out
}

// Slot resolves a colour by its schema name.
func (c Colors) Slot(name string) (string, bool) {
	loadSlots()
	index, ok := slotIndex[name]
	if !ok {
		return "", false
	}
	return reflect.ValueOf(c).Field(index).String(), true
}

// Validate reports the first empty or malformed slot.
func (c Colors) Validate() error {
	return colorValidator().Struct(c)
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func colorValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// SemanticColors are identical in both modes.
type SemanticColors struct {
	Success    string
	Error      string
	Warning    string
	Processing string
}

// Semantic is the shared semantic table.
var Semantic = SemanticColors{
	Success:    "#22C55E",
	Error:      "#EF4444",
	Warning:    "#F59E0B",
	Processing: "#6430D2",
}

// Gradient holds the header gradient stops.
type Gradient struct {
	Header [2]string
}

// HeaderGradient is shared between themes.
var HeaderGradient = Gradient{Header: [2]string{"#9662FF", "#4612B4"}}

// Shadows are only meaningful for the light table; dark surfaces use elevation instead.
var Shadows = struct {
	Card     string
	Elevated string
}{
	Card:     "0 2px 8px rgba(0,0,0,0.08)",
	Elevated: "0 4px 16px rgba(0,0,0,0.12)",
}
