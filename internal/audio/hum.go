package audio

import (
	"math"

	"tilelevel/internal/config"
	"tilelevel/internal/lighting"
)

const (
	SampleRate    = 44100
	ChannelCount  = 2
	bytesPerFrame = 8 // two float32 channels

	humFreq = 120.0 // ballast hum on 60 Hz mains

	// maxDrift is how far the hum may run from the simulation clock before it
	// jumps back. It must stay above the length of one device buffer.
	maxDrift = 0.25
)

// TimeSource is the simulation clock the hum follows. It is read from the
// audio goroutine.
type TimeSource interface {
	Now() float64
	Paused() bool
}

// Hum is an endless fluorescent ballast hum. Its loudness follows the lamp
// flicker, and dim events turn it into a harsher buzz.
type Hum struct {
	t     float64
	rate  float64
	scale func() float64
	clock TimeSource
}

// NewHum returns a hum that follows clock at the configured time scale.
// A nil clock lets the hum run free.
func NewHum(clock TimeSource) *Hum {
	return &Hum{rate: SampleRate, scale: config.GetTimeScale, clock: clock}
}

// Time returns the hum's simulation clock in seconds.
func (h *Hum) Time() float64 {
	return h.t
}

// Sample returns the sample at the current clock without advancing it.
func (h *Hum) Sample() float64 {
	t := h.t
	f := float64(lighting.Flicker(t))

	w := 2 * math.Pi * humFreq * t
	s := 0.50*math.Sin(w) + 0.25*math.Sin(2*w) + 0.12*math.Sin(3*w)
	s *= f

	if f < 0.5 {
		// starter arcing while the tube is dim
		buzz := 0.6
		if math.Sin(w) < 0 {
			buzz = -buzz
		}
		s += buzz
	}
	return math.Tanh(s)
}

// Read fills p with interleaved stereo float32 little-endian frames.
func (h *Hum) Read(p []byte) (int, error) {
	frames := len(p) / bytesPerFrame
	if frames == 0 {
		return 0, nil
	}

	n := frames * bytesPerFrame

	// Samples run ahead of the clock between frames; only resync when the
	// clock jumped (hitch clamp) or stopped
	if h.clock != nil {
		now := h.clock.Now()
		if h.clock.Paused() {
			h.t = now
			clear(p[:n])
			return n, nil
		}
		if math.Abs(h.t-now) > maxDrift {
			h.t = now
		}
	}

	step := 1.0 / h.rate
	if h.scale != nil {
		step *= h.scale()
	}
	for i := 0; i < frames; i++ {
		putStereoF32(p, i, h.Sample())
		h.t += step
	}
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels of frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	o := i * bytesPerFrame
	for ch := 0; ch < ChannelCount; ch++ {
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
		o += 4
	}
}
