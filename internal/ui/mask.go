package ui

import "image/color"

// fillMaskRGBA writes premultiplied tint pixels for set mask entries and
// transparent pixels elsewhere.
func fillMaskRGBA(buf []byte, mask []bool, tint color.RGBA) {
	a := uint32(tint.A)
	r := byte(uint32(tint.R) * a / 255)
	g := byte(uint32(tint.G) * a / 255)
	b := byte(uint32(tint.B) * a / 255)
	for i, on := range mask {
		p := buf[i*4 : i*4+4 : i*4+4]
		if !on {
			p[0], p[1], p[2], p[3] = 0, 0, 0, 0
			continue
		}
		p[0], p[1], p[2], p[3] = r, g, b, tint.A
	}
}
