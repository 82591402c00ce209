package palette

import (
	"bytes"
	_ "embed"
)

//go:embed mandel.mnd
var defaultData []byte

var defaultPalette = mustParse(defaultData)

// Default returns a copy of the bundled palette: deep blue through white and orange, black for the set itself.
func Default() Palette {
	return append(Palette(nil), defaultPalette...)
}

func mustParse(data []byte) Palette {
	p, err := Parse(bytes.NewReader(data))
	if err != nil {
		panic("palette: bundled palette: " + err.Error())
	}
	return p
}
