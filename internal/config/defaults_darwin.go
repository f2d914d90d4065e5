//go:build darwin

package config

// defaultFont returns the macOS font bundle. CoreText metrics need no
// spacing compensation.
func defaultFont() Font {
	return Font{
		family: "Menlo",
		style:  "Regular",
		size:   11.0,
	}
}
