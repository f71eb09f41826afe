package pcmstore

import (
	"fmt"
	"os"

	"github.com/aukio/soundbank/internal/errors"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func decodeWAV(file *os.File) (*audio.IntBuffer, int, error) {
	decoder := wav.NewDecoder(file)
	decoder.ReadInfo()

	if !decoder.IsValidFile() {
		return nil, 0, errors.NewStd("invalid WAV file format")
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("decoding WAV data: %w", err)
	}

	return buf, int(decoder.BitDepth), nil
}

func readWAVInfo(file *os.File) (AudioInfo, error) {
	decoder := wav.NewDecoder(file)
	decoder.ReadInfo()

	if !decoder.IsValidFile() {
		return AudioInfo{}, errors.NewStd("invalid WAV file format")
	}

	if decoder.BitDepth != 16 && decoder.BitDepth != 24 && decoder.BitDepth != 32 {
		return AudioInfo{}, fmt.Errorf("unsupported bit depth: %d", decoder.BitDepth)
	}

	if decoder.NumChans != 1 && decoder.NumChans != 2 {
		return AudioInfo{}, fmt.Errorf("unsupported number of channels: %d", decoder.NumChans)
	}

	// Estimate sample frames from the file size; close enough for a
	// header-only read
	fileInfo, err := file.Stat()
	if err != nil {
		return AudioInfo{}, err
	}
	bytesPerSample := int(decoder.BitDepth / 8)
	totalSamples := int(fileInfo.Size()) / bytesPerSample / int(decoder.NumChans)

	return AudioInfo{
		SampleRate:   int(decoder.SampleRate),
		TotalSamples: totalSamples,
		NumChannels:  int(decoder.NumChans),
		BitDepth:     int(decoder.BitDepth),
	}, nil
}
