package aeno

import (
	"image"
	"image/color"

	"github.com/fogleman/fauxgl"
)

// Frame holds the raw, unclamped colors of a render in row-major order from
// the top row down.
type Frame struct {
	Width, Height int
	Pixels        []Vector
}

func NewFrame(width, height int) *Frame {
	return &Frame{width, height, make([]Vector, width*height)}
}

func (f *Frame) At(x, y int) Vector {
	return f.Pixels[y*f.Width+x]
}

func (f *Frame) Set(x, y int, c Vector) {
	f.Pixels[y*f.Width+x] = c
}

// ToneMap scales c down so its brightest channel is 1 when any channel is
// above 1, keeping the ratio between channels. Other colors are unchanged.
func ToneMap(c Vector) Vector {
	if m := c.MaxComponent(); m > 1 {
		return c.DivScalar(m)
	}
	return c
}

// nrgba clamps c to [0, 1] and converts it to an opaque 8 bit color.
func nrgba(c Vector) color.NRGBA {
	return fauxgl.Color{R: c.X, G: c.Y, B: c.Z, A: 1}.NRGBA()
}

// Quantize clamps c to [0, 1] and converts it to 8 bit channels.
func Quantize(c Vector) (r, g, b uint8) {
	q := nrgba(c)
	return q.R, q.G, q.B
}

// RGB returns width*height tone mapped RGB triples.
func (f *Frame) RGB() []byte {
	buf := make([]byte, 0, len(f.Pixels)*3)
	for _, c := range f.Pixels {
		r, g, b := Quantize(ToneMap(c))
		buf = append(buf, r, g, b)
	}
	return buf
}

// Image returns the tone mapped frame as an opaque image.
func (f *Frame) Image() *image.NRGBA {
	im := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			im.SetNRGBA(x, y, nrgba(ToneMap(f.At(x, y))))
		}
	}
	return im
}
