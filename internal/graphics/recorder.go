package graphics

import (
	"sort"

	"tilelevel/internal/lighting"

	"github.com/go-gl/mathgl/mgl32"
)

// Op identifies a recorded device call.
type Op uint8

const (
	OpClear Op = iota
	OpSetMatrices
	OpSetLighting
	OpSetDepthWrite
	OpEnableLight
	OpDisableLight
	OpSetLight
	OpSetAmbient
	OpUseProgram
	OpUniform
	OpBindTexture
	OpSetColor
	OpDrawQuad
	opCount
)

var opNames = [opCount]string{
	"clear", "set-matrices", "set-lighting", "set-depth-write",
	"enable-light", "disable-light", "set-light", "set-ambient",
	"use-program", "uniform", "bind-texture", "set-color", "draw-quad",
}

func (o Op) String() string {
	if o < opCount {
		return opNames[o]
	}
	return "unknown"
}

// PipelineState is the simulated fixed-function state tracked by Recorder.
type PipelineState struct {
	Lighting   bool
	DepthWrite bool
	SunOn      bool
	LampOn     bool
	Ambient    mgl32.Vec4
	Sun        lighting.Light
	Lamp       lighting.Light
	Program    uint32
	Texture    Texture
	Color      mgl32.Vec3
}

// Call is one recorded device call with the state in effect after it ran.
type Call struct {
	Op    Op
	Light LightID
	Loc   int32
	Value mgl32.Vec2
	Int   int32
	Quad  Quad
	State PipelineState
}

// Recorder is a Device that records calls instead of talking to a GPU.
// It backs the dry-run mode and the renderer tests.
type Recorder struct {
	Calls []Call
	State PipelineState
}

// NewRecorder returns a recorder in the default GL state.
func NewRecorder() *Recorder {
	return &Recorder{State: PipelineState{Lighting: true, DepthWrite: true, Color: mgl32.Vec3{1, 1, 1}}}
}

func (r *Recorder) push(c Call) {
	c.State = r.State
	r.Calls = append(r.Calls, c)
}

func (r *Recorder) Clear(color mgl32.Vec4) { r.push(Call{Op: OpClear}) }

func (r *Recorder) SetMatrices(proj, view mgl32.Mat4) { r.push(Call{Op: OpSetMatrices}) }

func (r *Recorder) SetLighting(enabled bool) {
	r.State.Lighting = enabled
	r.push(Call{Op: OpSetLighting})
}

func (r *Recorder) SetDepthWrite(enabled bool) {
	r.State.DepthWrite = enabled
	r.push(Call{Op: OpSetDepthWrite})
}

func (r *Recorder) EnableLight(id LightID) {
	r.setLightOn(id, true)
	r.push(Call{Op: OpEnableLight, Light: id})
}

func (r *Recorder) DisableLight(id LightID) {
	r.setLightOn(id, false)
	r.push(Call{Op: OpDisableLight, Light: id})
}

func (r *Recorder) setLightOn(id LightID, on bool) {
	if id == LightSun {
		r.State.SunOn = on
	} else {
		r.State.LampOn = on
	}
}

func (r *Recorder) SetLight(id LightID, l lighting.Light) {
	if id == LightSun {
		r.State.Sun = l
	} else {
		r.State.Lamp = l
	}
	r.push(Call{Op: OpSetLight, Light: id})
}

func (r *Recorder) SetAmbient(c mgl32.Vec4) {
	r.State.Ambient = c
	r.push(Call{Op: OpSetAmbient})
}

func (r *Recorder) UseProgram(program uint32) {
	r.State.Program = program
	r.push(Call{Op: OpUseProgram})
}

func (r *Recorder) Uniform1f(loc int32, v float32) {
	r.push(Call{Op: OpUniform, Loc: loc, Value: mgl32.Vec2{v, 0}})
}

func (r *Recorder) Uniform2f(loc int32, x, y float32) {
	r.push(Call{Op: OpUniform, Loc: loc, Value: mgl32.Vec2{x, y}})
}

func (r *Recorder) Uniform1i(loc int32, v int32) {
	r.push(Call{Op: OpUniform, Loc: loc, Int: v})
}

func (r *Recorder) BindTexture(tex Texture) {
	r.State.Texture = tex
	r.push(Call{Op: OpBindTexture})
}

func (r *Recorder) SetColor(c mgl32.Vec3) {
	r.State.Color = c
	r.push(Call{Op: OpSetColor})
}

func (r *Recorder) DrawQuad(q *Quad) {
	r.push(Call{Op: OpDrawQuad, Quad: *q})
}

// Reset drops recorded calls but keeps the current state.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Count returns how many calls of the given op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for i := range r.Calls {
		if r.Calls[i].Op == op {
			n++
		}
	}
	return n
}

// Draws returns the recorded quad draws in order.
func (r *Recorder) Draws() []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == OpDrawQuad {
			out = append(out, c)
		}
	}
	return out
}

// OpCount pairs an op name with how often it ran.
type OpCount struct {
	Name  string
	Count int
}

// Stats returns per-op counts sorted by op.
func (r *Recorder) Stats() []OpCount {
	counts := make(map[Op]int)
	for _, c := range r.Calls {
		counts[c.Op]++
	}
	ops := make([]Op, 0, len(counts))
	for op := range counts {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })

	out := make([]OpCount, 0, len(ops))
	for _, op := range ops {
		out = append(out, OpCount{Name: op.String(), Count: counts[op]})
	}
	return out
}
