package game

// Sound names a one-shot sound event emitted by the game
type Sound int

const (
	SoundExplosion Sound = iota
	SoundFire
	SoundWin
	SoundLose
)

// Sounds lists every one-shot sound, in declaration order
var Sounds = []Sound{SoundExplosion, SoundFire, SoundWin, SoundLose}

// String returns the clip base name for the sound
func (s Sound) String() string {
	switch s {
	case SoundExplosion:
		return "explosion"
	case SoundFire:
		return "fire"
	case SoundWin:
		return "win"
	case SoundLose:
		return "lose"
	default:
		return "unknown"
	}
}

// AudioSink plays the game's sounds. Calls must not block the frame loop.
type AudioSink interface {
	// Play restarts the clip for a one-shot sound
	Play(sound Sound)

	// StartMusic (re)starts the looping background music from the beginning
	StartMusic()

	// StopAll stops every clip and releases playback resources
	StopAll()
}

// NopAudio discards every sound event
type NopAudio struct{}

func (NopAudio) Play(Sound)  {}
func (NopAudio) StartMusic() {}
func (NopAudio) StopAll()    {}
