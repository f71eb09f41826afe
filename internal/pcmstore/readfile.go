package pcmstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aukio/soundbank/internal/errors"
	"github.com/go-audio/audio"
)

// AudioInfo contains basic properties of a decoded audio file.
type AudioInfo struct {
	SampleRate   int
	TotalSamples int // per-channel sample frames
	NumChannels  int
	BitDepth     int
}

// Duration returns the playback length of the audio.
func (i AudioInfo) Duration() time.Duration {
	if i.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(i.TotalSamples) / float64(i.SampleRate) * float64(time.Second))
}

// decodeFile decodes a supported audio file into interleaved PCM samples.
func decodeFile(path string) (*audio.IntBuffer, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening audio file: %w", err)
	}
	defer file.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		return decodeWAV(file)
	case ".flac":
		return decodeFLAC(file)
	default:
		return nil, 0, errors.Newf("unsupported audio format: %s", ext).
			Component("pcmstore").
			Category(errors.CategoryFileParsing).
			Context("path_extension", ext).
			Build()
	}
}

// Info reads format properties of a supported audio file without keeping
// the decoded data.
func Info(path string) (AudioInfo, error) {
	file, err := os.Open(path)
	if err != nil {
		return AudioInfo{}, fmt.Errorf("opening audio file: %w", err)
	}
	defer file.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		return readWAVInfo(file)
	case ".flac":
		return readFLACInfo(file)
	default:
		return AudioInfo{}, errors.Newf("unsupported audio format: %s", ext).
			Component("pcmstore").
			Category(errors.CategoryFileParsing).
			Context("path_extension", ext).
			Build()
	}
}
