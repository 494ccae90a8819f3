// Package sound plays the game's cues through ebiten's audio package.
package sound

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/milk9111/brickfall/assets"
)

const SampleRate = 44100

const defaultVolume = 0.8

// Bank maps cue keys to embedded wav files and owns one player per key.
// Players are decoded on first use. Unknown keys are logged once.
type Bank struct {
	ctx     *audio.Context
	files   map[string]string
	players map[string]*audio.Player
	music   *audio.Player
	// loop is the last requested music key; looping is false after Stop.
	loop    string
	looping bool
	muted   bool
	warned  map[string]bool
	load    func(path string) ([]byte, error)
}

// NewBank creates a bank over ctx. A nil ctx gives a bank that only
// validates keys, which is what headless runs use.
func NewBank(ctx *audio.Context, files map[string]string) *Bank {
	return &Bank{
		ctx:     ctx,
		files:   files,
		players: make(map[string]*audio.Player),
		warned:  make(map[string]bool),
		load:    assets.LoadAudio,
	}
}

// SetMuted silences the bank. Unmuting resumes the music track if one was
// requested and not stopped since.
func (b *Bank) SetMuted(muted bool) {
	if b.muted == muted {
		return
	}
	b.muted = muted
	if muted {
		b.pauseMusic()
		return
	}
	if b.looping {
		b.startLoop(false)
	}
}

func (b *Bank) Muted() bool { return b.muted }

func (b *Bank) PlayOneShot(key string) {
	p := b.player(key, false)
	if p == nil || b.muted {
		return
	}
	p.SetVolume(defaultVolume)
	_ = p.Rewind()
	p.Play()
}

// PlayLoop starts key as the looping music track, replacing any other.
// While muted the key is remembered and starts on unmute.
func (b *Bank) PlayLoop(key string) {
	b.loop = key
	b.looping = true
	if b.muted {
		return
	}
	b.startLoop(true)
}

// Stop pauses the music track. One-shots run out on their own.
func (b *Bank) Stop() {
	b.looping = false
	b.pauseMusic()
}

func (b *Bank) startLoop(rewind bool) {
	p := b.player(b.loop, true)
	if p == nil {
		return
	}
	if b.music != nil && b.music != p {
		b.music.Pause()
		rewind = true
	}
	b.music = p
	if rewind {
		_ = p.Rewind()
	}
	p.Play()
}

func (b *Bank) pauseMusic() {
	if b.music != nil {
		b.music.Pause()
	}
}

func (b *Bank) resolve(key string) (string, bool) {
	if key == "" {
		return "", false
	}
	file, ok := b.files[key]
	if !ok {
		b.warn(key, fmt.Errorf("no file for key"))
		return "", false
	}
	return file, true
}

func (b *Bank) player(key string, loop bool) *audio.Player {
	if p, ok := b.players[key]; ok {
		return p
	}
	file, ok := b.resolve(key)
	if !ok || b.ctx == nil {
		return nil
	}
	p, err := b.newPlayer(file, loop)
	if err != nil {
		b.warn(key, err)
		return nil
	}
	b.players[key] = p
	return p
}

func (b *Bank) newPlayer(file string, loop bool) (*audio.Player, error) {
	data, err := b.load(file)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(strings.ToLower(file), ".wav") {
		return b.ctx.NewPlayerFromBytes(data), nil
	}
	stream, err := wav.DecodeWithSampleRate(b.ctx.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode wav %q: %w", file, err)
	}
	if loop {
		return b.ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	}
	return b.ctx.NewPlayer(stream)
}

func (b *Bank) warn(key string, err error) {
	if b.warned[key] {
		return
	}
	b.warned[key] = true
	log.Printf("sound: %s: %v", key, err)
}
