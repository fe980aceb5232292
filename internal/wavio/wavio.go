// Package wavio reads and writes 16-bit PCM WAV streams and converts
// samples between PCM16 and normalized float64.
package wavio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

var (
	// ErrInvalidWAV is returned when the input is not a readable RIFF/WAVE stream.
	ErrInvalidWAV = errors.New("wavio: invalid WAV data")
	// ErrUnsupportedFormat is returned for non-integer PCM encodings or odd bit depths.
	ErrUnsupportedFormat = errors.New("wavio: unsupported WAV format")
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
	bitDepth         = 16
)

// Audio is a decoded interleaved 16-bit PCM stream.
type Audio struct {
	Samples     []int16
	Channels    uint32
	SampleRate  uint32
	TotalFrames uint64
}

// Read decodes a complete WAV stream from r. Integer PCM with 8, 16, 24
// or 32 bits per sample is accepted and converted to 16 bits.
func Read(r io.Reader) (*Audio, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read WAV stream: %w", err)
	}

	dec := wav.NewDecoder(bytes.NewReader(data))

	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWAV, err)
	}

	if dec.NumChans == 0 || dec.SampleRate == 0 {
		return nil, fmt.Errorf("%w: missing fmt chunk", ErrInvalidWAV)
	}

	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, fmt.Errorf("%w: audio format %d", ErrUnsupportedFormat, dec.WavAudioFormat)
	}

	shift, err := pcmShift(int(dec.BitDepth))
	if err != nil {
		return nil, err
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWAV, err)
	}

	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = shift(v)
	}

	channels := uint32(dec.NumChans)

	// A trailing partial frame is dropped.
	frames := uint64(len(samples)) / uint64(channels)
	samples = samples[:frames*uint64(channels)]

	return &Audio{
		Samples:     samples,
		Channels:    channels,
		SampleRate:  dec.SampleRate,
		TotalFrames: frames,
	}, nil
}

// pcmShift returns the conversion from a decoded integer sample of the
// given depth to int16.
func pcmShift(depth int) (func(int) int16, error) {
	switch depth {
	case 8:
		// 8-bit WAV is unsigned with a 128 offset.
		return func(v int) int16 { return int16((v - 128) << 8) }, nil
	case 16:
		return func(v int) int16 { return int16(v) }, nil
	case 24:
		return func(v int) int16 { return int16(v >> 8) }, nil
	case 32:
		return func(v int) int16 { return int16(v >> 16) }, nil
	default:
		return nil, fmt.Errorf("%w: %d-bit PCM", ErrUnsupportedFormat, depth)
	}
}

// Write encodes a as a 16-bit PCM WAV stream to w.
//
// The encoder patches chunk sizes after the data is written, so the
// stream is staged in a temporary file and then copied to w.
func Write(w io.Writer, a *Audio) (err error) {
	if a == nil || a.Channels == 0 || a.SampleRate == 0 {
		return fmt.Errorf("%w: channels and sample rate must be > 0", ErrUnsupportedFormat)
	}

	tmp, err := os.CreateTemp("", "chst-*.wav")
	if err != nil {
		return fmt.Errorf("create staging file: %w", err)
	}

	defer func() {
		closeErr := tmp.Close()
		_ = os.Remove(tmp.Name())

		if err == nil && closeErr != nil {
			err = fmt.Errorf("close staging file: %w", closeErr)
		}
	}()

	enc := wav.NewEncoder(tmp, int(a.SampleRate), bitDepth, int(a.Channels), formatPCM)

	data := make([]int, len(a.Samples))
	for i, v := range a.Samples {
		data[i] = int(v)
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: int(a.Channels),
			SampleRate:  int(a.SampleRate),
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encode WAV: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize WAV: %w", err)
	}

	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind staging file: %w", err)
	}

	if _, err := io.Copy(w, tmp); err != nil {
		return fmt.Errorf("copy WAV stream: %w", err)
	}

	return nil
}
