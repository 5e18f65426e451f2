package graphics

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/go-gl/gl/v2.1/gl"
	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadTexture loads a repeating 2D texture from a file
func LoadTexture(path string) (Texture, int, int, error) {
	rgba, err := DecodeTexture(path)
	if err != nil {
		return 0, 0, 0, err
	}

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	// Floors and walls tile the image two times per quad
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	w, h := rgba.Rect.Size().X, rgba.Rect.Size().Y
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(w),
		int32(h),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix),
	)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return Texture(texture), w, h, nil
}

// DecodeTexture reads an image file into RGBA, rescaled to power-of-two sides.
func DecodeTexture(path string) (*image.RGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	return ToPowerOfTwo(img), nil
}

// ToPowerOfTwo copies img into an RGBA image whose sides are rounded up to
// powers of two, scaling bilinearly when the size changes.
func ToPowerOfTwo(img image.Image) *image.RGBA {
	b := img.Bounds()
	w, h := nextPowerOfTwo(b.Dx()), nextPowerOfTwo(b.Dy())
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))

	if w == b.Dx() && h == b.Dy() {
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
		return rgba
	}
	xdraw.ApproxBiLinear.Scale(rgba, rgba.Bounds(), img, b, xdraw.Src, nil)
	return rgba
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
