//go:build !darwin

package config

// defaultFont returns the font bundle for FreeType systems. The offsets
// compensate for FreeType cell metrics that otherwise render the default
// face too loose vertically.
func defaultFont() Font {
	return Font{
		family: "DejaVu Sans Mono",
		style:  "Book",
		size:   11.0,
		offset: FontOffset{x: 2.0, y: -7.0},
	}
}
