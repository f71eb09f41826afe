package pcmstore

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/tphakala/flac"
)

func decodeFLAC(file *os.File) (*audio.IntBuffer, int, error) {
	decoder, err := flac.NewDecoder(file)
	if err != nil {
		return nil, 0, fmt.Errorf("opening FLAC decoder: %w", err)
	}

	bytesPerSample := decoder.BitsPerSample / 8
	if bytesPerSample == 0 {
		return nil, 0, fmt.Errorf("unsupported FLAC bit depth: %d", decoder.BitsPerSample)
	}

	var samples []int
	for {
		frame, err := decoder.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, 0, fmt.Errorf("decoding FLAC frame: %w", err)
		}

		for i := 0; i+bytesPerSample <= len(frame); i += bytesPerSample {
			var sample int32
			switch decoder.BitsPerSample {
			case 16:
				sample = int32(int16(binary.LittleEndian.Uint16(frame[i:])))
			case 24:
				sample = int32(frame[i]) | int32(frame[i+1])<<8 | int32(frame[i+2])<<16
				sample = (sample << 8) >> 8 // sign extend
			case 32:
				sample = int32(binary.LittleEndian.Uint32(frame[i:]))
			default:
				return nil, 0, fmt.Errorf("unsupported FLAC bit depth: %d", decoder.BitsPerSample)
			}
			samples = append(samples, int(sample))
		}
	}

	buf := &audio.IntBuffer{
		Data: samples,
		Format: &audio.Format{
			SampleRate:  decoder.SampleRate,
			NumChannels: decoder.NChannels,
		},
		SourceBitDepth: decoder.BitsPerSample,
	}
	return buf, decoder.BitsPerSample, nil
}

func readFLACInfo(file *os.File) (AudioInfo, error) {
	decoder, err := flac.NewDecoder(file)
	if err != nil {
		return AudioInfo{}, err
	}

	return AudioInfo{
		SampleRate:   decoder.SampleRate,
		TotalSamples: int(decoder.TotalSamples),
		NumChannels:  decoder.NChannels,
		BitDepth:     decoder.BitsPerSample,
	}, nil
}
