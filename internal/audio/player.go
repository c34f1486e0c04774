package audio

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/iburimskiy/pulse-heart/internal/config"
)

// ErrUnsupportedAudio is returned for files that are not wav, mp3 or flac.
var ErrUnsupportedAudio = errors.New("unsupported audio file type")

// Input is polled once per frame for the latest reading. It must not block.
type Input interface {
	Read() Reading
}

// Silence is the input used when no audio is available.
type Silence struct{}

func (Silence) Read() Reading { return Reading{} }

// Player loops an audio file through the speaker and analyzes what it plays.
type Player struct {
	log      *slog.Logger
	streamer beep.StreamSeekCloser
	format   beep.Format
	tap      *Tap
	analyzer *Analyzer
}

// openStream decodes path based on its extension. The decoders take ownership
// of the file: closing the streamer closes it.
func openStream(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupportedAudio, ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	return streamer, format, nil
}

// OpenPlayer starts looping playback of path. smoothing and gain configure the
// analyzer, see NewAnalyzer.
func OpenPlayer(path string, smoothing, gain float64, log *slog.Logger) (*Player, error) {
	streamer, format, err := openStream(path)
	if err != nil {
		return nil, err
	}

	analyzer, err := NewAnalyzer(config.FFTSize, float64(format.SampleRate), smoothing, gain)
	if err != nil {
		_ = streamer.Close()
		return nil, err
	}

	t := NewTap(beep.Loop(-1, streamer), config.VisualRingSize)
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/20)); err != nil {
		_ = streamer.Close()
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}
	speaker.Play(t)

	log.Info("audio playing", "file", path, "sample_rate", int(format.SampleRate), "channels", format.NumChannels)
	return &Player{
		log:      log,
		streamer: streamer,
		format:   format,
		tap:      t,
		analyzer: analyzer,
	}, nil
}

// Read analyzes the most recent FFT window of played samples.
func (p *Player) Read() Reading {
	return p.analyzer.Analyze(p.tap.Snapshot(config.FFTSize))
}

// Close stops playback and releases the file. Closing the streamer closes the
// file underneath it.
func (p *Player) Close() error {
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()

	err := p.streamer.Close()
	if err != nil {
		p.log.Warn("closing audio", "error", err)
	}
	return err
}
