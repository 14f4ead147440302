package aeno

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

func isPPM(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".ppm")
}

// Encode writes the frame to w in the format named by the extension of name:
// .ppm, or any format imaging knows (png, jpg, gif, tif, bmp).
func Encode(w io.Writer, f *Frame, name string) error {
	if isPPM(name) {
		return WritePPM(w, f.Width, f.Height, f.RGB())
	}
	format, err := imaging.FormatFromFilename(name)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return imaging.Encode(w, f.Image(), format)
}

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}

// Save writes the frame to path. Unsupported extensions are rejected before
// the file is created.
func Save(f *Frame, path string) (err error) {
	if !isPPM(path) {
		if _, err := imaging.FormatFromFilename(path); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("save %s: %w", path, cerr)
		}
	}()
	bw := bufio.NewWriter(file)
	if err := Encode(bw, f, path); err != nil {
		return err
	}
	return bw.Flush()
}

// Thumbnail scales img down to fit in a size x size box, keeping its aspect
// ratio. Images already small enough are returned as is.
func Thumbnail(img image.Image, size uint) image.Image {
	return resize.Thumbnail(size, size, img, resize.Bilinear)
}

// SaveThumbnail writes a thumbnail of the frame to path.
func SaveThumbnail(f *Frame, path string, size uint) error {
	if err := imaging.Save(Thumbnail(f.Image(), size), path); err != nil {
		return fmt.Errorf("save thumbnail %s: %w", path, err)
	}
	return nil
}
