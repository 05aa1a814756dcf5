package desktop

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/sirupsen/logrus"

	"mothershipmayhem/game"
	"mothershipmayhem/logger"
	"mothershipmayhem/sound"
)

// Audio plays clips through ebiten's audio context
type Audio struct {
	players map[game.Sound]*audio.Player
	music   *audio.Player
	log     *logrus.Entry
}

// NewAudio opens the audio context and prepares one player per clip. Clips
// missing from dir/sounds are synthesized.
func NewAudio(dir string) (*Audio, error) {
	ctx := audio.NewContext(int(sound.SampleRate))
	a := &Audio{
		players: make(map[game.Sound]*audio.Player, len(game.Sounds)),
		log:     logger.Log.WithField("component", "audio"),
	}

	for _, s := range game.Sounds {
		pcm, err := a.clip(dir, s.String(), func() ([]byte, error) {
			stream, err := sound.Synth(s, sound.SampleRate)
			if err != nil {
				return nil, err
			}
			return sound.EncodePCM16(stream)
		})
		if err != nil {
			return nil, fmt.Errorf("clip %s: %w", s, err)
		}
		a.players[s] = ctx.NewPlayerFromBytes(pcm)
	}

	pcm, err := a.clip(dir, sound.MusicName, func() ([]byte, error) {
		buf, err := sound.Music(sound.SampleRate)
		if err != nil {
			return nil, err
		}
		return sound.EncodePCM16(buf.Streamer(0, buf.Len()))
	})
	if err != nil {
		return nil, fmt.Errorf("music: %w", err)
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	if a.music, err = ctx.NewPlayer(loop); err != nil {
		return nil, fmt.Errorf("music player: %w", err)
	}

	return a, nil
}

// clip returns the decoded file for name, or the synthesized fallback
func (a *Audio) clip(dir, name string, synth func() ([]byte, error)) ([]byte, error) {
	path, err := sound.FindClip(dir, name)
	if err == nil {
		pcm, err := decodeFile(path)
		if err == nil {
			a.log.WithField("path", path).Debug("loaded clip")
			return pcm, nil
		}
		a.log.WithError(err).WithField("path", path).Warn("unreadable clip, using built-in sound")
	} else if !errors.Is(err, fs.ErrNotExist) {
		a.log.WithError(err).Warn("clip lookup failed, using built-in sound")
	}
	return synth()
}

// decodeFile decodes a wav or mp3 file to 16-bit stereo at the context rate
func decodeFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var stream io.Reader
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(int(sound.SampleRate), f)
	default:
		stream, err = wav.DecodeWithSampleRate(int(sound.SampleRate), f)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return io.ReadAll(stream)
}

// Play rewinds the clip so a repeated sound restarts instead of overlapping
func (a *Audio) Play(s game.Sound) {
	p, ok := a.players[s]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil {
		a.log.WithError(err).WithField("sound", s).Debug("rewind failed")
		return
	}
	p.Play()
}

func (a *Audio) StartMusic() {
	if err := a.music.Rewind(); err != nil {
		a.log.WithError(err).Debug("music rewind failed")
		return
	}
	a.music.Play()
}

func (a *Audio) StopAll() {
	for _, p := range a.players {
		p.Pause()
	}
	a.music.Pause()
}
