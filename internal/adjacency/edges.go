package adjacency

// RGBA is one border-pixel sample with 8-bit components.
type RGBA struct {
	R, G, B, A uint8
}

// EdgeColors holds the four ordered border sequences of one tile. Each
// sequence has length tileSize, or zero when the source buffer was missing or
// malformed. Sequences keep the source pixel order: top and bottom run left
// to right, left and right run top to bottom.
type EdgeColors struct {
	Top    []RGBA
	Bottom []RGBA
	Left   []RGBA
	Right  []RGBA
}

// ExtractEdges derives the four border sequences from a row-major RGBA pixel
// buffer of side length size. It is a pure function of its input.
//
// A nil, short, or otherwise mis-sized buffer yields the zero EdgeColors
// (four empty sequences) rather than an error; such a tile simply cannot
// match anything.
func ExtractEdges(pixels []uint8, size int) EdgeColors {
	if size <= 0 || len(pixels) != size*size*4 {
		return EdgeColors{}
	}

	ec := EdgeColors{
		Top:    make([]RGBA, size),
		Bottom: make([]RGBA, size),
		Left:   make([]RGBA, size),
		Right:  make([]RGBA, size),
	}

	for i := 0; i < size; i++ {
		ec.Top[i] = pixelAt(pixels, size, i, 0)
		ec.Bottom[i] = pixelAt(pixels, size, i, size-1)
		ec.Left[i] = pixelAt(pixels, size, 0, i)
		ec.Right[i] = pixelAt(pixels, size, size-1, i)
	}
	return ec
}

// pixelAt reads the RGBA quad at (x, y) from a row-major buffer of width w.
func pixelAt(pixels []uint8, w, x, y int) RGBA {
	off := (y*w + x) * 4
	return RGBA{
		R: pixels[off],
		G: pixels[off+1],
		B: pixels[off+2],
		A: pixels[off+3],
	}
}
