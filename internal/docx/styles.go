package docx

import (
	"github.com/unidoc/unioffice/color"
	"github.com/unidoc/unioffice/measurement"
)

// StyleRole names one visual role in the fixed CV layout. Every paragraph
// the composer emits is styled through exactly one role.
type StyleRole string

// Style roles of the reference layout.
const (
	StyleNameHeading    StyleRole = "name-heading"
	StyleTitleLine      StyleRole = "title-line"
	StyleContactLine    StyleRole = "contact-line"
	StyleSectionHeading StyleRole = "section-heading"
	StyleBodyText       StyleRole = "body-text"
	StylePeriodLabel    StyleRole = "period-label"
	StyleSummaryText    StyleRole = "summary-text"
)

// Style is one immutable entry of the registry: the concrete visual
// attributes for a role. Zero values mean "leave the document default".
type Style struct {
	Font        string
	Size        measurement.Distance
	Color       color.Color
	Bold        bool
	Italic      bool
	SpaceBefore measurement.Distance
	SpaceAfter  measurement.Distance
	LineSpacing measurement.Distance // 240 twips = single spacing
	LeftIndent  measurement.Distance
}

// Palette of the reference design. The accent blue is applied everywhere a
// single accent is needed.
var (
	accentBlue = color.RGB(0x00, 0x4A, 0xAC)
	titleBlue  = color.RGB(0x05, 0x70, 0xFF)
	darkText   = color.RGB(0x2F, 0x2E, 0x2E)
	grayText   = color.RGB(0x6F, 0x6F, 0x6F)
)

const fontFamily = "Trebuchet MS"

// Fixed geometry of the reference layout.
const (
	logoWidth  = 1.66 * measurement.Inch
	logoHeight = 0.93 * measurement.Inch

	headerLeftWidth  = 1.9 * measurement.Inch
	headerRightWidth = 5.5 * measurement.Inch

	periodColWidth = 2.6 * measurement.Inch
	bodyColWidth   = 4.9 * measurement.Inch

	pageMarginTop    = 0.8 * measurement.Centimeter
	pageMarginRight  = 0.5 * measurement.Centimeter
	pageMarginBottom = 1.0 * measurement.Centimeter
	pageMarginLeft   = 0.8 * measurement.Centimeter

	headingBorderWidth   = 0.75 * measurement.Point
	separatorBorderWidth = 1.5 * measurement.Point

	bulletIndent = 0.25 * measurement.Inch
)

// accentHex is the heading/separator border color as a WordprocessingML hex
// string. Must stay in sync with accentBlue.
const accentHex = "004AAC"

var registry = map[StyleRole]Style{
	StyleNameHeading: {
		Font:        fontFamily,
		Size:        17 * measurement.Point,
		Color:       accentBlue,
		Bold:        true,
		SpaceBefore: 2 * measurement.Point,
	},
	StyleTitleLine: {
		Font:       fontFamily,
		Size:       15 * measurement.Point,
		Color:      titleBlue,
		SpaceAfter: 2 * measurement.Point,
	},
	StyleContactLine: {
		Font:        fontFamily,
		Size:        8 * measurement.Point,
		Color:       grayText,
		SpaceBefore: 2 * measurement.Point,
	},
	StyleSectionHeading: {
		Font:        fontFamily,
		Size:        11 * measurement.Point,
		Color:       accentBlue,
		Bold:        true,
		SpaceBefore: 10 * measurement.Point,
		SpaceAfter:  4 * measurement.Point,
		LeftIndent:  12 * measurement.Point,
	},
	StyleBodyText: {
		Font:  fontFamily,
		Size:  8 * measurement.Point,
		Color: darkText,
	},
	StylePeriodLabel: {
		Font:  fontFamily,
		Size:  8 * measurement.Point,
		Color: accentBlue,
		Bold:  true,
	},
	StyleSummaryText: {
		Font:        fontFamily,
		Size:        8 * measurement.Point,
		Color:       grayText,
		Italic:      true,
		SpaceBefore: 6 * measurement.Point,
		SpaceAfter:  2 * measurement.Point,
		LineSpacing: 276 * measurement.Twips, // 1.15 line spacing
	},
}

// Lookup returns the style for a role. A role missing from the registry is a
// ComposeError; the composer never falls back to a silent default.
func Lookup(role StyleRole) (Style, error) {
	st, ok := registry[role]
	if !ok {
		return Style{}, &ComposeError{Message: "unknown style role: " + string(role)}
	}
	return st, nil
}
