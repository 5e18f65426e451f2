package assets

import "path/filepath"

// ShaderPair names the vertex and fragment source of a program.
type ShaderPair struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

// Manifest lists the files that make up a level's asset bundle.
// Relative paths are resolved against Root.
type Manifest struct {
	Root string `yaml:"root"`

	Floor       string `yaml:"floor"`
	Wall        string `yaml:"wall"`
	Blood       string `yaml:"blood"`
	Lava        string `yaml:"lava"`
	IndoorFloor string `yaml:"indoor_floor"`
	IndoorWall  string `yaml:"indoor_wall"`
	Ceiling     string `yaml:"ceiling"`
	Skydome     string `yaml:"skydome"`

	BloodShader ShaderPair `yaml:"blood_shader"`
	LavaShader  ShaderPair `yaml:"lava_shader"`
}

// DefaultManifest returns the stock asset layout.
func DefaultManifest() Manifest {
	return Manifest{
		Root:        ".",
		Floor:       "assets/181.png",
		Wall:        "assets/091.png",
		Blood:       "assets/016.png",
		Lava:        "assets/179.png",
		IndoorFloor: "assets/100.png",
		IndoorWall:  "assets/060.png",
		Ceiling:     "assets/081.png",
		Skydome:     "assets/Va4wUMQ.png",
		BloodShader: ShaderPair{Vertex: "shaders/blood.vert", Fragment: "shaders/blood.frag"},
		LavaShader:  ShaderPair{Vertex: "shaders/lava.vert", Fragment: "shaders/lava.frag"},
	}
}

// Resolve returns p joined to the manifest root unless p is absolute.
func (m Manifest) Resolve(p string) string {
	if filepath.IsAbs(p) || m.Root == "" {
		return p
	}
	return filepath.Join(m.Root, p)
}

// WithDefaults fills empty entries from DefaultManifest.
func (m Manifest) WithDefaults() Manifest {
	d := DefaultManifest()
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&m.Root, d.Root)
	fill(&m.Floor, d.Floor)
	fill(&m.Wall, d.Wall)
	fill(&m.Blood, d.Blood)
	fill(&m.Lava, d.Lava)
	fill(&m.IndoorFloor, d.IndoorFloor)
	fill(&m.IndoorWall, d.IndoorWall)
	fill(&m.Ceiling, d.Ceiling)
	fill(&m.Skydome, d.Skydome)
	fill(&m.BloodShader.Vertex, d.BloodShader.Vertex)
	fill(&m.BloodShader.Fragment, d.BloodShader.Fragment)
	fill(&m.LavaShader.Vertex, d.LavaShader.Vertex)
	fill(&m.LavaShader.Fragment, d.LavaShader.Fragment)
	return m
}
