package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/iburimskiy/pulse-heart/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWAV(t *testing.T, samples int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tone.WAV")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	format := beep.Format{SampleRate: 22050, NumChannels: 2, Precision: 2}
	require.NoError(t, wav.Encode(f, beep.Silence(samples), format))
	return path
}

func TestOpenStream_DecodesWAV(t *testing.T) {
	path := writeWAV(t, 2205)

	streamer, format, err := openStream(path)
	require.NoError(t, err)
	defer streamer.Close()

	assert.Equal(t, beep.SampleRate(22050), format.SampleRate)
	assert.Equal(t, 2205, streamer.Len())
}

func TestOpenStream_RejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("la la la"), 0o600))

	_, _, err := openStream(path)
	assert.True(t, errors.Is(err, ErrUnsupportedAudio))
}

func TestOpenStream_MissingFile(t *testing.T) {
	_, _, err := openStream(filepath.Join(t.TempDir(), "gone.mp3"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPlayerClose_ReleasesFileOnce(t *testing.T) {
	path := writeWAV(t, 2205)

	streamer, format, err := openStream(path)
	require.NoError(t, err)
	p := &Player{log: logger.Discard(), streamer: streamer, format: format}

	assert.NoError(t, p.Close())
}

func TestSilence_ReadsZero(t *testing.T) {
	assert.Equal(t, Reading{}, Silence{}.Read())
}
