package core

// Color indexes the fixed element palette
type Color uint8

const (
	ColorBlue Color = iota
	ColorGreen
	ColorYellow
	ColorOrange
	ColorRed
	ColorFuchsia
	ColorViolet

	// PaletteSize is the number of palette entries, must stay last
	PaletteSize
)

// SyncColor is the color applied to every element by the sync command
const SyncColor = ColorBlue

var colorNames = [PaletteSize]string{
	"blue", "green", "yellow", "orange", "red", "fuchsia", "violet",
}

// Next returns the following palette entry, wrapping after the last
func (c Color) Next() Color {
	return (c%PaletteSize + 1) % PaletteSize
}

// Valid reports whether c is a palette entry
func (c Color) Valid() bool {
	return c < PaletteSize
}

func (c Color) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return colorNames[c]
}

// ParseColor resolves a palette name, returns false when unknown
func ParseColor(name string) (Color, bool) {
	for i, n := range colorNames {
		if n == name {
			return Color(i), true
		}
	}
	return 0, false
}
