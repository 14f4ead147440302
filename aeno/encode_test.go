package aeno

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func testFrame(w, h int) *Frame {
	f := NewFrame(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			f.Set(x, y, V(float64(x)/float64(w), float64(y)/float64(h), 2))
		}
	}
	return f
}

func TestWritePPM(t *testing.T) {
	rgb := []byte{255, 0, 0, 0, 255, 0, 0, 0, 255, 1, 2, 3}
	var buf bytes.Buffer
	if err := WritePPM(&buf, 2, 2, rgb); err != nil {
		t.Fatal(err)
	}
	want := append([]byte("P6\n2 2\n255\n"), rgb...)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got %q, want %q", buf.Bytes(), want)
	}
}

func TestWritePPMWrongLength(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePPM(&buf, 2, 2, make([]byte, 11)); err == nil {
		t.Error("expected an error")
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes before failing", buf.Len())
	}
}

func TestEncodePPMIsToneMapped(t *testing.T) {
	f := NewFrame(1, 1)
	f.Set(0, 0, V(2, 1, 0))
	var buf bytes.Buffer
	if err := Encode(&buf, f, "out.ppm"); err != nil {
		t.Fatal(err)
	}
	want := append([]byte("P6\n1 1\n255\n"), 255, 127, 0)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got %v, want %v", buf.Bytes(), want)
	}
}

func TestEncodePNG(t *testing.T) {
	f := testFrame(5, 3)
	var buf bytes.Buffer
	if err := Encode(&buf, f, "frame.PNG"); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, 5, 3) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	want := f.Image()
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			r1, g1, b1, _ := img.At(x, y).RGBA()
			r2, g2, b2, _ := want.At(x, y).RGBA()
			if r1 != r2 || g1 != g2 || b1 != b2 {
				t.Fatalf("(%d, %d) decoded %v, want %v", x, y, img.At(x, y), want.At(x, y))
			}
		}
	}
}

func TestEncodeUnsupported(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testFrame(2, 2), "frame.xyz"); err == nil {
		t.Error("expected an error")
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	f := testFrame(4, 3)

	out := filepath.Join(dir, "frame.ppm")
	if err := Save(f, out); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want := append([]byte("P6\n4 3\n255\n"), f.RGB()...)
	if !bytes.Equal(data, want) {
		t.Error("saved ppm does not match the frame")
	}

	bad := filepath.Join(dir, "frame.xyz")
	if err := Save(f, bad); err == nil {
		t.Error("expected an error for an unsupported extension")
	}
	if _, err := os.Stat(bad); !os.IsNotExist(err) {
		t.Errorf("unsupported format still created %s", bad)
	}

	if err := Save(f, filepath.Join(dir, "missing", "frame.png")); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestThumbnail(t *testing.T) {
	img := testFrame(64, 32).Image()
	if b := Thumbnail(img, 16).Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Errorf("thumbnail is %dx%d, want 16x8", b.Dx(), b.Dy())
	}
	if b := Thumbnail(img, 128).Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Errorf("small image resized to %dx%d", b.Dx(), b.Dy())
	}
}

func TestSaveThumbnail(t *testing.T) {
	out := filepath.Join(t.TempDir(), "thumb.png")
	if err := SaveThumbnail(testFrame(40, 20), out, 10); err != nil {
		t.Fatal(err)
	}
	file, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	cfg, err := png.DecodeConfig(file)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 10 || cfg.Height != 5 {
		t.Errorf("thumbnail is %dx%d, want 10x5", cfg.Width, cfg.Height)
	}
}
