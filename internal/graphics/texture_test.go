package graphics

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestNextPowerOfTwo(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 64: 64, 65: 128, 300: 512}
	for in, want := range cases {
		if got := nextPowerOfTwo(in); got != want {
			t.Errorf("nextPowerOfTwo(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestToPowerOfTwoKeepsExactSizes(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 8))
	src.Set(1, 2, color.NRGBA{R: 200, A: 255})

	out := ToPowerOfTwo(src)
	if out.Bounds().Dx() != 4 || out.Bounds().Dy() != 8 {
		t.Fatalf("size = %v, want 4x8", out.Bounds())
	}
	if r, _, _, _ := out.At(1, 2).RGBA(); r>>8 != 200 {
		t.Errorf("pixel not copied, red = %d", r>>8)
	}
}

func TestToPowerOfTwoRescales(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 5, 3))
	out := ToPowerOfTwo(src)
	if out.Bounds().Dx() != 8 || out.Bounds().Dy() != 4 {
		t.Errorf("size = %v, want 8x4", out.Bounds())
	}
}

func TestDecodeTexture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tile.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 16, 16))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := DecodeTexture(path)
	if err != nil {
		t.Fatalf("DecodeTexture: %v", err)
	}
	if img.Bounds().Dx() != 16 {
		t.Errorf("width = %d, want 16", img.Bounds().Dx())
	}

	if _, err := DecodeTexture(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestTextureCacheLoadsOnce(t *testing.T) {
	calls := 0
	c := &TextureCache{byPath: make(map[string]Texture), load: func(path string) (Texture, error) {
		calls++
		if path == "bad.png" {
			return 0, errors.New("nope")
		}
		return Texture(calls), nil
	}}

	a, _ := c.Get("a.png")
	b, _ := c.Get("a.png")
	if a != b || calls != 1 {
		t.Errorf("texture loaded %d times", calls)
	}
	if _, err := c.Get("bad.png"); err == nil {
		t.Errorf("expected load error")
	}
	if c.Len() != 1 {
		t.Errorf("failed loads must not be cached, Len = %d", c.Len())
	}
}
