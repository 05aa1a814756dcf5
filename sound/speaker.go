package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"mothershipmayhem/game"
)

// SpeakerSink plays clips through the system speaker. Replaying a sound cuts
// off its previous instance, the way a rewound clip would.
type SpeakerSink struct {
	bank *Bank

	mu      sync.Mutex
	playing map[game.Sound]*beep.Ctrl
	music   *beep.Ctrl
	closed  bool
}

// NewSpeakerSink opens the speaker. Only one speaker may be open per process.
func NewSpeakerSink(bank *Bank) (*SpeakerSink, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	return &SpeakerSink{
		bank:    bank,
		playing: make(map[game.Sound]*beep.Ctrl),
	}, nil
}

func (s *SpeakerSink) Play(sound game.Sound) {
	buf, ok := s.bank.Clips[sound]
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	ctrl := &beep.Ctrl{Streamer: buf.Streamer(0, buf.Len())}
	speaker.Lock()
	if prev := s.playing[sound]; prev != nil {
		prev.Streamer = nil
	}
	speaker.Unlock()
	s.playing[sound] = ctrl
	speaker.Play(ctrl)
}

func (s *SpeakerSink) StartMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	speaker.Lock()
	if s.music != nil {
		s.music.Streamer = nil
	}
	speaker.Unlock()

	s.music = &beep.Ctrl{Streamer: beep.Loop(-1, s.bank.Music.Streamer(0, s.bank.Music.Len()))}
	speaker.Play(s.music)
}

// StopAll silences everything and releases the speaker
func (s *SpeakerSink) StopAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Clear()
	speaker.Close()
}
