package view

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	return RGB{R: addByte(c.R, dr), G: addByte(c.G, dg), B: addByte(c.B, db)}
}

func addByte(v uint8, d int) uint8 {
	n := int(v) + d
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

// Floats returns the colour as GL clear-colour components.
func (c RGB) Floats() (r, g, b float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

// Lit and unlit variants of a key colour.
const (
	dimLevel = 150
	litBoost = 70
)

var Palette = struct {
	Background  RGB
	Panel       RGB
	CardBack    RGB
	WhiteKey    RGB
	BlackKey    RGB
	EmptySlot   RGB
	Idle        RGB
	Presenting  RGB
	Awaiting    RGB
	Advancing   RGB
	Failed      RGB
	Complete    RGB
	Progress    RGB
	ProgressOff RGB
}{
	Background:  RGB{R: 250, G: 244, B: 232},
	Panel:       RGB{R: 236, G: 226, B: 206},
	CardBack:    RGB{R: 120, G: 104, B: 168},
	WhiteKey:    RGB{R: 248, G: 248, B: 248},
	BlackKey:    RGB{R: 40, G: 40, B: 48},
	EmptySlot:   RGB{R: 214, G: 206, B: 190},
	Idle:        RGB{R: 160, G: 160, B: 170},
	Presenting:  RGB{R: 80, G: 140, B: 230},
	Awaiting:    RGB{R: 80, G: 190, B: 110},
	Advancing:   RGB{R: 245, G: 190, B: 60},
	Failed:      RGB{R: 225, G: 75, B: 70},
	Complete:    RGB{R: 170, G: 90, B: 210},
	Progress:    RGB{R: 255, G: 215, B: 90},
	ProgressOff: RGB{R: 110, G: 110, B: 120},
}

// symbolColors cycles through the colours of the pads, notes and instruments.
var symbolColors = []RGB{
	{R: 239, G: 83, B: 80},
	{R: 255, G: 167, B: 38},
	{R: 255, G: 238, B: 88},
	{R: 102, G: 187, B: 106},
	{R: 66, G: 165, B: 245},
	{R: 92, G: 107, B: 192},
	{R: 171, G: 71, B: 188},
}

// SymbolColor is the colour of the i-th symbol of a tone table.
func SymbolColor(i int) RGB {
	if i < 0 {
		i = -i
	}
	return symbolColors[i%len(symbolColors)]
}
