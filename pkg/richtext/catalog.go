package richtext

// Alignment is the text alignment of a paragraph.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Alignments lists the supported alignments in menu order.
var Alignments = []Option{
	{Label: "Left", Value: string(AlignLeft)},
	{Label: "Center", Value: string(AlignCenter)},
	{Label: "Right", Value: string(AlignRight)},
}

// Option is an entry of one of the pickers of the command bar.
type Option struct {
	Label string
	Value string
}

// FontFamilies is the catalog of font families a field may use.
var FontFamilies = []Option{
	{Label: "Inter", Value: "inter"},
	{Label: "Roboto", Value: "roboto"},
	{Label: "Poppins", Value: "poppins"},
	{Label: "Montserrat", Value: "montserrat"},
	{Label: "Open Sans", Value: "opensans"},
	{Label: "Playfair Display", Value: "playfair"},
	{Label: "Lato", Value: "lato"},
	{Label: "Source Sans Pro", Value: "source"},
	{Label: "Ubuntu", Value: "ubuntu"},
	{Label: "Merriweather", Value: "merriweather"},
}

// FontSizes is the catalog of font sizes in pixels.
var FontSizes = []Option{
	{Label: "Extra Small", Value: "12"},
	{Label: "Small", Value: "14"},
	{Label: "Base", Value: "16"},
	{Label: "Large", Value: "18"},
	{Label: "Extra Large", Value: "20"},
	{Label: "2XL", Value: "24"},
	{Label: "3XL", Value: "30"},
	{Label: "4XL", Value: "36"},
}

// ValidFontFamily reports whether v is in FontFamilies.
func ValidFontFamily(v string) bool {
	return inCatalog(FontFamilies, v)
}

// ValidFontSize reports whether v is in FontSizes.
func ValidFontSize(v string) bool {
	return inCatalog(FontSizes, v)
}

func parseAlignment(v string) (Alignment, bool) {
	switch Alignment(v) {
	case AlignLeft, AlignCenter, AlignRight:
		return Alignment(v), true
	}
	return AlignLeft, false
}

func inCatalog(opts []Option, v string) bool {
	for _, o := range opts {
		if o.Value == v {
			return true
		}
	}
	return false
}

// Label returns the label of v in opts, or v itself.
func Label(opts []Option, v string) string {
	for _, o := range opts {
		if o.Value == v {
			return o.Label
		}
	}
	return v
}
