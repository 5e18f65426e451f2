package audio

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const readyTimeout = 2 * time.Second

// HumPlayer plays the lamp hum on the default output device.
type HumPlayer struct {
	ctx    *oto.Context
	player oto.Player
	hum    *Hum
}

// StartHum opens the audio device and starts the hum at volume, kept in step with clock.
func StartHum(volume float64, clock TimeSource) (*HumPlayer, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}

	select {
	case <-ready:
	case <-time.After(readyTimeout):
		return nil, errors.New("audio device not ready")
	}

	hum := NewHum(clock)
	player := ctx.NewPlayer(hum)
	player.SetVolume(volume)
	player.Play()

	return &HumPlayer{ctx: ctx, player: player, hum: hum}, nil
}

// SetVolume changes the hum volume.
func (p *HumPlayer) SetVolume(v float64) {
	p.player.SetVolume(v)
}

// Close stops playback.
func (p *HumPlayer) Close() error {
	return p.player.Close()
}
