package lighting

import "math"

// Fluorescent flicker tuning
const (
	FlickerRate = 4.0 // blocks per second

	dimChance    = 0.22
	dimFrom      = 0.35
	dimTo        = 0.55
	dimLevel     = 0.12
	strobeChance = 0.06
	strobeFrom   = 0.65
	strobeTo     = 0.78
	strobeLevel  = 0.40
)

// Hash01 is a sine-based pseudorandom hash in [0,1). It runs in float32 on
// purpose: the low bits of the product decide which blocks flicker, and
// levels authored against the float32 hash expect the same pattern.
func Hash01(x float32) float32 {
	s := float32(math.Sin(float64(x*12.9898))) * 43758.5453
	return s - float32(math.Floor(float64(s)))
}

// Flicker returns the lamp brightness factor at simulation time t.
// Time is cut into 1/FlickerRate second blocks; each block hashes to decide
// whether it carries a dim event (and, more rarely, a second partial strobe).
// Other moments hum near full brightness. The result depends on t alone.
func Flicker(t float64) float32 {
	scaled := t * FlickerRate
	block := math.Floor(scaled)
	r := Hash01(float32(block))

	if r < dimChance {
		phase := scaled - block
		if phase > dimFrom && phase < dimTo {
			return dimLevel
		}
		if r < strobeChance && phase > strobeFrom && phase < strobeTo {
			return strobeLevel
		}
	}

	return float32(0.96 + 0.04*math.Sin(t*5.0))
}
