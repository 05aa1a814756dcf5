package sound

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/gopxl/beep"
	"github.com/sirupsen/logrus"

	"mothershipmayhem/game"
	"mothershipmayhem/logger"
)

// Bank holds every clip in memory, keyed by sound, plus the music loop
type Bank struct {
	Clips map[game.Sound]*beep.Buffer
	Music *beep.Buffer
}

// LoadBank resolves each clip from dir/sounds and synthesizes any that are
// missing or unreadable.
func LoadBank(dir string) (*Bank, error) {
	log := logger.Log.WithField("component", "sound")
	bank := &Bank{Clips: make(map[game.Sound]*beep.Buffer, len(game.Sounds))}

	for _, s := range game.Sounds {
		buf, err := loadClip(log, dir, s.String())
		if err != nil {
			return nil, err
		}
		if buf == nil {
			stream, err := Synth(s, SampleRate)
			if err != nil {
				return nil, err
			}
			buf = beep.NewBuffer(Format)
			buf.Append(stream)
		}
		bank.Clips[s] = buf
	}

	music, err := loadClip(log, dir, MusicName)
	if err != nil {
		return nil, err
	}
	if music == nil {
		if music, err = Music(SampleRate); err != nil {
			return nil, fmt.Errorf("load bank: %w", err)
		}
	}
	bank.Music = music

	return bank, nil
}

// loadClip returns nil without error when the file is absent or broken
func loadClip(log *logrus.Entry, dir, name string) (*beep.Buffer, error) {
	path, err := FindClip(dir, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load bank: %w", err)
	}

	buf, err := DecodeFile(path)
	if err != nil {
		log.WithError(err).WithField("path", path).Warn("unreadable clip, using built-in sound")
		return nil, nil
	}
	log.WithField("path", path).Debug("loaded clip")
	return buf, nil
}
