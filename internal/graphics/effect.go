package graphics

// ProgramSource is a linked program whose uniforms can be looked up by name.
type ProgramSource interface {
	ProgramID() uint32
	UniformLocation(name string) int32
}

// Uniform names shared by the animated surface shaders
const (
	UniformTime     = "uTime"
	UniformStrength = "uStrength"
	UniformHeat     = "uHeat"
	UniformTexture  = "uTexture"
	UniformScroll   = "uScroll" // lava flow
	UniformSpeed    = "uSpeed"  // blood flow
)

// EffectProgram is an animated surface program with its uniform locations
// resolved once at load time. A location of -1 means the shader has no such
// uniform and writes to it are dropped by GL.
type EffectProgram struct {
	ID       uint32
	Time     int32
	Strength int32
	Flow     int32
	Heat     int32
	Texture  int32
}

// NewEffectProgram resolves the effect uniforms of src. flowName is the name
// of the 2D flow vector, which differs between the lava and blood shaders.
func NewEffectProgram(src ProgramSource, flowName string) EffectProgram {
	return EffectProgram{
		ID:       src.ProgramID(),
		Time:     src.UniformLocation(UniformTime),
		Strength: src.UniformLocation(UniformStrength),
		Flow:     src.UniformLocation(flowName),
		Heat:     src.UniformLocation(UniformHeat),
		Texture:  src.UniformLocation(UniformTexture),
	}
}
