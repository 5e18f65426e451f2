package assets

import "tilelevel/internal/graphics"

// GLLoader loads assets into the current GL context.
type GLLoader struct {
	Textures *graphics.TextureCache
	programs []*graphics.Shader
}

// NewGLLoader returns a loader with a fresh texture cache.
func NewGLLoader() *GLLoader {
	return &GLLoader{Textures: graphics.NewTextureCache()}
}

func (l *GLLoader) LoadTexture(path string) (graphics.Texture, error) {
	return l.Textures.Get(path)
}

func (l *GLLoader) LoadProgram(vertexPath, fragmentPath string) (graphics.ProgramSource, error) {
	s, err := graphics.NewShader(vertexPath, fragmentPath)
	if err != nil {
		return nil, err
	}
	l.programs = append(l.programs, s)
	return s, nil
}

// Release frees every texture and program this loader created.
func (l *GLLoader) Release() {
	for _, s := range l.programs {
		s.Delete()
	}
	l.programs = nil
	l.Textures.Release()
}
