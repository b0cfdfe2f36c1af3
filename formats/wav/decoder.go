// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/riff"
	"github.com/ik5/wavnorm/audio"
)

const (
	formatPCM        = 1
	formatIEEEFloat  = 3
	formatExtensible = 0xFFFE
)

var waveID = [4]byte{'W', 'A', 'V', 'E'}

// fmtChunk is the subset of the WAVE fmt chunk needed to read samples.
type fmtChunk struct {
	formatTag     uint16
	channels      uint16
	sampleRate    uint32
	byteRate      uint32
	blockAlign    uint16
	bitsPerSample uint16
}

// fmtExtension is the WAVE_FORMAT_EXTENSIBLE tail of the fmt chunk.
type fmtExtension struct {
	Size        uint16
	ValidBits   uint16
	ChannelMask uint32
	SubFormat   [16]byte
}

type Decoder struct{}

// Sniff reports whether header starts a RIFF/WAVE file.
func (Decoder) Sniff(header []byte) bool {
	return len(header) >= 12 &&
		bytes.Equal(header[0:4], riff.RiffID[:]) &&
		bytes.Equal(header[8:12], waveID[:])
}

// Decode reads a whole WAV file into memory.
//
// Integer PCM of 8, 16, 24 and 32 bits and IEEE float of 32 and 64 bits are
// read, including WAVE_FORMAT_EXTENSIBLE files. Other encodings fail with an
// *audio.UnsupportedFormatError, anything unparseable with an
// *audio.DecodeError.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	buf, err := decode(r)
	if err != nil {
		var unsupported *audio.UnsupportedFormatError
		if errors.As(err, &unsupported) {
			return nil, err
		}
		return nil, &audio.DecodeError{Format: "wav", Err: err}
	}

	return buf, nil
}

func decode(r io.Reader) (*audio.Buffer, error) {
	parser := riff.New(r)

	id, size, err := parser.IDnSize()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}
	if id != riff.RiffID {
		return nil, ErrNotWavFile
	}
	parser.ID = id
	parser.Size = size

	if err := binary.Read(r, binary.BigEndian, &parser.Format); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}
	if parser.Format != waveID {
		return nil, ErrNotWavFile
	}

	var format *fmtChunk
	for {
		chunk, err := nextChunk(parser, r)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				if format == nil {
					return nil, ErrMissingFmtChunk
				}
				return nil, ErrMissingDataChunk
			}
			return nil, fmt.Errorf("reading chunk: %w", err)
		}

		switch chunk.ID {
		case riff.FmtID:
			format, err = readFmtChunk(chunk)
			if err != nil {
				return nil, err
			}

		case riff.DataFormatID:
			if format == nil {
				return nil, ErrUnsupportedWavLayout
			}

			data, err := io.ReadAll(chunk.R)
			if err != nil {
				return nil, fmt.Errorf("reading data chunk: %w", err)
			}

			return format.buffer(data)
		}

		if err := skipChunk(r, chunk); err != nil {
			return nil, fmt.Errorf("skipping %s chunk: %w", chunk.ID[:], err)
		}
	}
}

// nextChunk reads a chunk header and limits the body to its declared size.
// The pad byte of an odd-sized chunk is left for skipChunk.
func nextChunk(parser *riff.Parser, r io.Reader) (*riff.Chunk, error) {
	id, size, err := parser.IDnSize()
	if err != nil {
		return nil, err
	}

	return &riff.Chunk{
		ID:   id,
		Size: int(size),
		R:    io.LimitReader(r, int64(size)),
	}, nil
}

// skipChunk discards the unread body of chunk and its pad byte.
func skipChunk(r io.Reader, chunk *riff.Chunk) error {
	if _, err := io.Copy(io.Discard, chunk.R); err != nil {
		return err
	}

	if chunk.Size%2 == 1 {
		// a missing pad byte at the end of the file is tolerated
		if _, err := io.CopyN(io.Discard, r, 1); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
	}

	return nil
}

func readFmtChunk(chunk *riff.Chunk) (*fmtChunk, error) {
	f := &fmtChunk{}

	fields := []any{&f.formatTag, &f.channels, &f.sampleRate, &f.byteRate, &f.blockAlign, &f.bitsPerSample}
	for _, field := range fields {
		if err := chunk.ReadLE(field); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidFmtChunk, err)
		}
	}

	if f.formatTag == formatExtensible && chunk.Size >= 40 {
		var ext fmtExtension
		if err := chunk.ReadLE(&ext); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidFmtChunk, err)
		}

		// the sub-format GUID starts with the plain format tag
		f.formatTag = binary.LittleEndian.Uint16(ext.SubFormat[:2])
	}

	if f.channels == 0 {
		return nil, fmt.Errorf("%w: no channels", ErrInvalidFmtChunk)
	}
	if f.sampleRate == 0 {
		return nil, fmt.Errorf("%w: zero sample rate", ErrInvalidFmtChunk)
	}

	return f, nil
}

func (f *fmtChunk) elementType() (audio.ElementType, error) {
	switch f.formatTag {
	case formatPCM:
		switch f.bitsPerSample {
		case 8:
			return audio.Uint8, nil
		case 16:
			return audio.Int16, nil
		case 24:
			return audio.Int24, nil
		case 32:
			return audio.Int32, nil
		}
		return audio.Unknown, &audio.UnsupportedFormatError{Name: fmt.Sprintf("pcm%d", f.bitsPerSample)}

	case formatIEEEFloat:
		switch f.bitsPerSample {
		case 32:
			return audio.Float32, nil
		case 64:
			return audio.Float64, nil
		}
		return audio.Unknown, &audio.UnsupportedFormatError{Name: fmt.Sprintf("float%d", f.bitsPerSample)}
	}

	return audio.Unknown, &audio.UnsupportedFormatError{Name: fmt.Sprintf("wav format tag 0x%04x", f.formatTag)}
}

// buffer interprets the data chunk. Bytes past the last whole frame are dropped.
func (f *fmtChunk) buffer(data []byte) (*audio.Buffer, error) {
	typ, err := f.elementType()
	if err != nil {
		return nil, err
	}

	width := int(f.bitsPerSample) / 8
	channels := int(f.channels)
	rate := int(f.sampleRate)

	n := len(data) / (width * channels) * channels
	data = data[:n*width]

	switch typ {
	case audio.Uint8:
		samples := make([]int8, n)
		for i, b := range data {
			samples[i] = int8(int(b) - 128)
		}
		return audio.NewUint8Buffer(samples, rate, channels), nil

	case audio.Int16:
		samples := make([]int16, n)
		for i := range samples {
			samples[i] = int16(binary.LittleEndian.Uint16(data[2*i:]))
		}
		return audio.NewInt16Buffer(samples, rate, channels), nil

	case audio.Int24:
		samples := make([]int32, n)
		for i := range samples {
			samples[i] = goaudio.Int24LETo32(data[3*i : 3*i+3])
		}
		return audio.NewInt24Buffer(samples, rate, channels), nil

	case audio.Int32:
		samples := make([]int32, n)
		for i := range samples {
			samples[i] = int32(binary.LittleEndian.Uint32(data[4*i:]))
		}
		return audio.NewInt32Buffer(samples, rate, channels), nil

	case audio.Float32:
		samples := make([]float32, n)
		for i := range samples {
			samples[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[4*i:]))
		}
		return audio.NewFloat32Buffer(samples, rate, channels), nil

	case audio.Float64:
		samples := make([]float64, n)
		for i := range samples {
			samples[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[8*i:]))
		}
		return audio.NewFloat64Buffer(samples, rate, channels), nil
	}

	return nil, &audio.UnsupportedFormatError{Name: typ.String()}
}
