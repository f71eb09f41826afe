package inspect

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aukio/soundbank/internal/conf"
)

func TestInspectCommandPrintsProperties(t *testing.T) {
	dir := t.TempDir()
	out, err := os.Create(filepath.Join(dir, "tone.wav"))
	require.NoError(t, err)
	enc := wav.NewEncoder(out, 44100, 16, 2, 1)
	require.NoError(t, enc.Write(&audio.IntBuffer{
		Data:   make([]int, 1024),
		Format: &audio.Format{SampleRate: 44100, NumChannels: 2},
	}))
	require.NoError(t, enc.Close())
	require.NoError(t, out.Close())

	settings := &conf.Settings{}
	settings.Bank.Prefix = dir + string(os.PathSeparator)

	cmd := Command(settings)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"tone.wav"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "44100 Hz, 2 ch, 16 bit")
}

func TestInspectCommandReportsUnreadableFiles(t *testing.T) {
	settings := &conf.Settings{}

	cmd := Command(settings)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.wav")})

	require.Error(t, cmd.Execute())
	assert.Contains(t, buf.String(), "could not be read")
}
