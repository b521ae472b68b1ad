package game

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pong/config"
	"github.com/pthm-cable/pong/match"
	"github.com/pthm-cable/pong/systems"
)

// Audio plays the paddle hit sound and the background music.
// Missing files disable the affected sound.
type Audio struct {
	hit    rl.Sound
	hasHit bool

	music    rl.Music
	hasMusic bool
	song     string
}

// NewAudio opens the audio device, loads the hit sound and starts one song
// picked at random from cfg.Songs.
func NewAudio(cfg config.AudioConfig, rng systems.Random) (*Audio, error) {
	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		return nil, errors.New("audio device not ready")
	}

	a := &Audio{}

	hitPath := filepath.Join(cfg.Dir, cfg.HitSound)
	if _, err := os.Stat(hitPath); err != nil {
		slog.Warn("hit sound unavailable", "path", hitPath, "error", err)
	} else {
		a.hit = rl.LoadSound(hitPath)
		rl.SetSoundVolume(a.hit, float32(cfg.HitVolume))
		a.hasHit = true
	}

	if len(cfg.Songs) > 0 {
		a.song = cfg.Songs[rng.IntN(len(cfg.Songs))]
		songPath := filepath.Join(cfg.Dir, a.song)
		if _, err := os.Stat(songPath); err != nil {
			slog.Warn("music unavailable", "path", songPath, "error", err)
		} else {
			a.music = rl.LoadMusicStream(songPath)
			rl.SetMusicVolume(a.music, float32(cfg.MusicVolume))
			rl.PlayMusicStream(a.music)
			a.hasMusic = true
		}
	}

	slog.Info("audio ready", "song", a.song, "music", a.hasMusic, "hit_sound", a.hasHit)
	return a, nil
}

// Update reacts to the step's events and keeps the music stream fed.
func (a *Audio) Update(res match.StepResult) {
	for _, ev := range res.Events {
		switch ev.Type {
		case match.EventPaddleHit:
			if a.hasHit {
				rl.PlaySound(a.hit)
			}
		case match.EventMusicToggled:
			if !a.hasMusic {
				continue
			}
			if ev.On {
				rl.ResumeMusicStream(a.music)
			} else {
				rl.PauseMusicStream(a.music)
			}
		}
	}

	if a.hasMusic {
		rl.UpdateMusicStream(a.music)
	}
}

// SongName returns the chosen song file, or "" when none is configured.
func (a *Audio) SongName() string {
	return a.song
}

// Unload frees sounds and closes the audio device.
func (a *Audio) Unload() {
	if a.hasHit {
		rl.UnloadSound(a.hit)
	}
	if a.hasMusic {
		rl.StopMusicStream(a.music)
		rl.UnloadMusicStream(a.music)
	}
	rl.CloseAudioDevice()
}
