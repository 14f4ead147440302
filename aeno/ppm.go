package aeno

import (
	"fmt"
	"io"
)

// WritePPM writes a binary PPM (P6) image: a text header with the size and a
// max channel value of 255, then the RGB triples row-major from the top.
func WritePPM(w io.Writer, width, height int, rgb []byte) error {
	if len(rgb) != width*height*3 {
		return fmt.Errorf("ppm: %dx%d image needs %d bytes, got %d", width, height, width*height*3, len(rgb))
	}
	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", width, height); err != nil {
		return err
	}
	_, err := w.Write(rgb)
	return err
}
