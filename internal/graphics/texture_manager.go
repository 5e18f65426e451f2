package graphics

import (
	"sync"

	"github.com/go-gl/gl/v2.1/gl"
)

// TextureCache loads each texture path once.
type TextureCache struct {
	mu     sync.RWMutex
	byPath map[string]Texture
	load   func(path string) (Texture, error)
}

// NewTextureCache returns a cache backed by LoadTexture.
func NewTextureCache() *TextureCache {
	return &TextureCache{
		byPath: make(map[string]Texture),
		load: func(path string) (Texture, error) {
			tex, _, _, err := LoadTexture(path)
			return tex, err
		},
	}
}

// Get returns the texture for path, loading it on first use.
func (c *TextureCache) Get(path string) (Texture, error) {
	c.mu.RLock()
	if tex, ok := c.byPath[path]; ok {
		c.mu.RUnlock()
		return tex, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double check locking
	if tex, ok := c.byPath[path]; ok {
		return tex, nil
	}

	tex, err := c.load(path)
	if err != nil {
		return 0, err
	}

	c.byPath[path] = tex
	return tex, nil
}

// Len returns the number of cached textures.
func (c *TextureCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byPath)
}

// Release deletes every cached texture from the GL context.
func (c *TextureCache) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for path, tex := range c.byPath {
		id := uint32(tex)
		gl.DeleteTextures(1, &id)
		delete(c.byPath, path)
	}
}
