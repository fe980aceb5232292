package wavio

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rawWAV builds a minimal RIFF/WAVE stream with a 16-byte fmt chunk.
func rawWAV(format, channels uint16, sampleRate uint32, bits uint16, data []byte) []byte {
	var b bytes.Buffer

	blockAlign := channels * ((bits + 7) / 8)

	b.WriteString("RIFF")
	_ = binary.Write(&b, binary.LittleEndian, uint32(36+len(data)))
	b.WriteString("WAVE")
	b.WriteString("fmt ")
	_ = binary.Write(&b, binary.LittleEndian, uint32(16))
	_ = binary.Write(&b, binary.LittleEndian, format)
	_ = binary.Write(&b, binary.LittleEndian, channels)
	_ = binary.Write(&b, binary.LittleEndian, sampleRate)
	_ = binary.Write(&b, binary.LittleEndian, sampleRate*uint32(blockAlign))
	_ = binary.Write(&b, binary.LittleEndian, blockAlign)
	_ = binary.Write(&b, binary.LittleEndian, bits)
	b.WriteString("data")
	_ = binary.Write(&b, binary.LittleEndian, uint32(len(data)))
	b.Write(data)

	return b.Bytes()
}

func TestWriteReadRoundTrip(t *testing.T) {
	in := &Audio{
		Samples:    []int16{0, 1, -1, 32767, -32768, 1234, -4321, 42},
		Channels:   2,
		SampleRate: 44100,
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, in))
	assert.Equal(t, "RIFF", buf.String()[:4])

	out, err := Read(&buf)
	require.NoError(t, err)

	assert.Equal(t, in.Samples, out.Samples)
	assert.Equal(t, uint32(2), out.Channels)
	assert.Equal(t, uint32(44100), out.SampleRate)
	assert.Equal(t, uint64(4), out.TotalFrames)
}

func TestReadHandBuilt16Bit(t *testing.T) {
	data := []byte{0x00, 0x40, 0x00, 0xC0, 0xFF, 0x7F}

	a, err := Read(bytes.NewReader(rawWAV(formatPCM, 1, 8000, 16, data)))
	require.NoError(t, err)

	assert.Equal(t, []int16{16384, -16384, 32767}, a.Samples)
	assert.Equal(t, uint32(1), a.Channels)
	assert.Equal(t, uint32(8000), a.SampleRate)
	assert.Equal(t, uint64(3), a.TotalFrames)
}

func TestReadDropsPartialFrame(t *testing.T) {
	data := []byte{0x01, 0x00, 0x02, 0x00, 0x03, 0x00}

	a, err := Read(bytes.NewReader(rawWAV(formatPCM, 2, 8000, 16, data)))
	require.NoError(t, err)

	assert.Equal(t, []int16{1, 2}, a.Samples)
	assert.Equal(t, uint64(1), a.TotalFrames)
}

func TestRead24BitConvertsTo16(t *testing.T) {
	data := []byte{0x56, 0x34, 0x12, 0x00, 0x00, 0x40}

	a, err := Read(bytes.NewReader(rawWAV(formatPCM, 1, 48000, 24, data)))
	require.NoError(t, err)

	assert.Equal(t, []int16{0x1234, 0x4000}, a.Samples)
}

func TestReadRejectsFloatFormat(t *testing.T) {
	data := make([]byte, 8)

	_, err := Read(bytes.NewReader(rawWAV(3, 1, 48000, 32, data)))
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestReadRejectsOddBitDepth(t *testing.T) {
	data := make([]byte, 4)

	_, err := Read(bytes.NewReader(rawWAV(formatPCM, 1, 48000, 12, data)))
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestReadInvalid(t *testing.T) {
	for _, in := range []string{"", "hello", strings.Repeat("x", 64)} {
		_, err := Read(strings.NewReader(in))
		require.ErrorIs(t, err, ErrInvalidWAV, "input %q", in)
	}
}

func TestWriteRejectsMissingFormat(t *testing.T) {
	var buf bytes.Buffer

	require.Error(t, Write(&buf, nil))
	require.Error(t, Write(&buf, &Audio{Samples: []int16{1}, SampleRate: 44100}))
	require.Error(t, Write(&buf, &Audio{Samples: []int16{1}, Channels: 1}))
	assert.Zero(t, buf.Len())
}
