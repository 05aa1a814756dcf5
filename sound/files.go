package sound

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"
)

// MusicName is the base name of the background music file
const MusicName = "music"

// clipExtensions are tried in order when looking up a clip file
var clipExtensions = []string{".wav", ".mp3"}

// FindClip returns the path of the first existing clip file for name in dir/sounds
func FindClip(dir, name string) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("clip %s: %w", name, fs.ErrNotExist)
	}
	for _, ext := range clipExtensions {
		path := filepath.Join(dir, "sounds", name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("clip %s: %w", name, err)
		}
	}
	return "", fmt.Errorf("clip %s in %s: %w", name, dir, fs.ErrNotExist)
}

// DecodeFile reads a wav or mp3 clip fully into memory at SampleRate
func DecodeFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	default:
		stream, format, err = wav.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer stream.Close()

	var s beep.Streamer = stream
	if format.SampleRate != SampleRate {
		s = beep.Resample(4, format.SampleRate, SampleRate, stream)
	}

	buf := beep.NewBuffer(Format)
	buf.Append(s)
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return buf, nil
}
