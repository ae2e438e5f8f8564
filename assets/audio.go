package assets

import (
	"fmt"

	cfg "github.com/automoto/skater/config"
	"github.com/automoto/skater/sound"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundBank renders the synthesized effects once and hands out players.
type SoundBank struct {
	cache   map[cfg.SoundID][]byte
	context *audio.Context
	rate    beep.SampleRate
}

func NewSoundBank(ctx *audio.Context) *SoundBank {
	return &SoundBank{
		cache:   make(map[cfg.SoundID][]byte),
		context: ctx,
		rate:    beep.SampleRate(ctx.SampleRate()),
	}
}

// Preload renders an effect so the first play has no synthesis lag.
func (b *SoundBank) Preload(id cfg.SoundID) error {
	if _, ok := b.cache[id]; ok {
		return nil
	}
	var s beep.Streamer
	switch id {
	case cfg.SoundLand:
		s = sound.NewClack(b.rate, 1, 1)
	case cfg.SoundPop:
		s = sound.NewClack(b.rate, 0.7, 7)
	default:
		return fmt.Errorf("unknown sound %d", id)
	}
	b.cache[id] = sound.Render(s)
	return nil
}

// NewPlayer returns a fresh player for an effect.
func (b *SoundBank) NewPlayer(id cfg.SoundID) (*audio.Player, error) {
	if err := b.Preload(id); err != nil {
		return nil, err
	}
	return b.context.NewPlayerFromBytes(b.cache[id]), nil
}

// NewRollingPlayer wraps the endless wheel loop in a streaming player.
func (b *SoundBank) NewRollingPlayer(seed int64) (*sound.Loop, *audio.Player, error) {
	loop := sound.NewLoop(sound.NewRolling(b.rate, seed))
	player, err := b.context.NewPlayer(loop)
	if err != nil {
		return nil, nil, fmt.Errorf("rolling player: %w", err)
	}
	return loop, player, nil
}
