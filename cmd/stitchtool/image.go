package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"

	// Registers the TGA decoder with image.Decode.
	_ "github.com/ftrvxmtrx/tga"

	"github.com/Faultbox/lightbake/pkg/math"
)

// loadLightmap decodes a square lightmap image into a float pixel buffer,
// one Vec4 per texel, row-major.
func loadLightmap(path string) ([]math.Vec4, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, 0, fmt.Errorf("decoding %s: %w", path, err)
	}

	bounds := img.Bounds()
	size := bounds.Dx()
	if bounds.Dy() != size {
		return nil, 0, fmt.Errorf("lightmap must be square, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	buf := make([]math.Vec4, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			buf[y*size+x] = math.Vec4{
				X: float32(r) / 0xffff,
				Y: float32(g) / 0xffff,
				Z: float32(b) / 0xffff,
				W: float32(a) / 0xffff,
			}
		}
	}
	return buf, size, nil
}

// saveLightmap encodes the float pixel buffer as PNG or WebP based on the
// output file extension. Values are clamped to [0,1].
func saveLightmap(path string, buf []math.Vec4, size int) error {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := buf[y*size+x]
			img.SetNRGBA(x, y, color.NRGBA{
				R: quantize(v.X),
				G: quantize(v.Y),
				B: quantize(v.Z),
				A: quantize(v.W),
			})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".webp":
		return nativewebp.Encode(f, img, nil)
	default:
		return png.Encode(f, img)
	}
}

// quantize maps a [0,1] float channel to an 8-bit value.
func quantize(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
