package assets

import (
	"errors"
	"fmt"
	"log"

	"tilelevel/internal/graphics"
)

// Bundle holds every texture and program the level renderer binds.
type Bundle struct {
	Floor       graphics.Texture
	Wall        graphics.Texture
	Blood       graphics.Texture
	Lava        graphics.Texture
	IndoorFloor graphics.Texture
	IndoorWall  graphics.Texture
	Ceiling     graphics.Texture
	Skydome     graphics.Texture

	BloodFX graphics.EffectProgram
	LavaFX  graphics.EffectProgram
}

// Loader turns asset files into GPU handles.
type Loader interface {
	LoadTexture(path string) (graphics.Texture, error)
	LoadProgram(vertexPath, fragmentPath string) (graphics.ProgramSource, error)
}

// Load loads every asset listed in m. Every item is attempted so the error
// names all missing files; any failure fails the whole bundle.
func Load(l Loader, m Manifest) (*Bundle, error) {
	var (
		b    Bundle
		errs []error
	)

	textures := []struct {
		name string
		path string
		dst  *graphics.Texture
	}{
		{"floor", m.Floor, &b.Floor},
		{"wall", m.Wall, &b.Wall},
		{"blood", m.Blood, &b.Blood},
		{"lava", m.Lava, &b.Lava},
		{"indoor floor", m.IndoorFloor, &b.IndoorFloor},
		{"indoor wall", m.IndoorWall, &b.IndoorWall},
		{"ceiling", m.Ceiling, &b.Ceiling},
		{"skydome", m.Skydome, &b.Skydome},
	}
	for _, t := range textures {
		tex, err := l.LoadTexture(m.Resolve(t.path))
		if err == nil && tex == 0 {
			err = errors.New("loader returned no texture")
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("%s texture: %w", t.name, err))
			continue
		}
		*t.dst = tex
	}

	programs := []struct {
		name string
		src  ShaderPair
		flow string
		dst  *graphics.EffectProgram
	}{
		{"blood", m.BloodShader, graphics.UniformSpeed, &b.BloodFX},
		{"lava", m.LavaShader, graphics.UniformScroll, &b.LavaFX},
	}
	for _, p := range programs {
		src, err := l.LoadProgram(m.Resolve(p.src.Vertex), m.Resolve(p.src.Fragment))
		if err == nil && src.ProgramID() == 0 {
			err = errors.New("loader returned no program")
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("%s shader: %w", p.name, err))
			continue
		}
		*p.dst = graphics.NewEffectProgram(src, p.flow)
	}

	if err := errors.Join(errs...); err != nil {
		log.Printf("failed to load %d asset(s)", len(errs))
		return nil, fmt.Errorf("loading assets: %w", err)
	}
	return &b, nil
}

// Placeholder returns a bundle of distinct fake handles, used when drawing
// into a graphics.Recorder without a GL context.
func Placeholder() *Bundle {
	fx := func(id uint32) graphics.EffectProgram {
		return graphics.EffectProgram{ID: id, Time: 0, Strength: 1, Flow: 2, Heat: 3, Texture: 4}
	}
	return &Bundle{
		Floor:       1,
		Wall:        2,
		Blood:       3,
		Lava:        4,
		IndoorFloor: 5,
		IndoorWall:  6,
		Ceiling:     7,
		Skydome:     8,
		BloodFX:     fx(1),
		LavaFX:      fx(2),
	}
}
