// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/wavnorm/audio"
)

// frames requested from the go-audio decoder per PCMBuffer call
const readChunkFrames = 4096

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type Decoder struct{}

// Sniff reports whether header starts a FORM/AIFF or FORM/AIFC file.
func (Decoder) Sniff(header []byte) bool {
	if len(header) < 12 || string(header[0:4]) != "FORM" {
		return false
	}

	form := string(header[8:12])
	return form == "AIFF" || form == "AIFC"
}

// Decode reads a whole uncompressed AIFF file into memory. Samples keep
// their stored width: 8, 16, 24 or 32 bit signed integers.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	buf, err := decode(r)
	if err != nil {
		var unsupported *audio.UnsupportedFormatError
		if errors.As(err, &unsupported) {
			return nil, err
		}
		return nil, &audio.DecodeError{Format: "aiff", Err: err}
	}

	return buf, nil
}

func decode(r io.Reader) (*audio.Buffer, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	typ, err := elementType(int(dec.BitDepth))
	if err != nil {
		return nil, err
	}

	return readAll(dec, typ)
}

func elementType(bitDepth int) (audio.ElementType, error) {
	switch bitDepth {
	case 8:
		return audio.Int8, nil
	case 16:
		return audio.Int16, nil
	case 24:
		return audio.Int24, nil
	case 32:
		return audio.Int32, nil
	}

	return audio.Unknown, &audio.UnsupportedFormatError{Name: fmt.Sprintf("pcm%d", bitDepth)}
}

// readAll drains dec. A trailing partial frame is dropped.
func readAll(dec aiffReader, typ audio.ElementType) (*audio.Buffer, error) {
	format := dec.Format()
	if format == nil || format.NumChannels < 1 || format.SampleRate < 1 {
		return nil, ErrUnsupportedAiffLayout
	}

	channels := format.NumChannels
	chunk := &goaudio.IntBuffer{
		Data:   make([]int, readChunkFrames*channels),
		Format: format,
	}

	var samples []int
	for {
		n, err := dec.PCMBuffer(chunk)
		samples = append(samples, chunk.Data[:n]...)

		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("reading samples: %w", err)
		}

		if n < len(chunk.Data) {
			break
		}
	}

	samples = samples[:len(samples)/channels*channels]

	return newBuffer(typ, samples, format.SampleRate, channels)
}

func newBuffer(typ audio.ElementType, samples []int, sampleRate, channels int) (*audio.Buffer, error) {
	switch typ {
	case audio.Int8:
		out := make([]int8, len(samples))
		for i, s := range samples {
			out[i] = int8(s)
		}
		return audio.NewInt8Buffer(out, sampleRate, channels), nil

	case audio.Int16:
		out := make([]int16, len(samples))
		for i, s := range samples {
			out[i] = int16(s)
		}
		return audio.NewInt16Buffer(out, sampleRate, channels), nil

	case audio.Int24:
		out := make([]int32, len(samples))
		for i, s := range samples {
			out[i] = int32(s)
		}
		return audio.NewInt24Buffer(out, sampleRate, channels), nil

	case audio.Int32:
		out := make([]int32, len(samples))
		for i, s := range samples {
			out[i] = int32(s)
		}
		return audio.NewInt32Buffer(out, sampleRate, channels), nil
	}

	return nil, &audio.UnsupportedFormatError{Name: typ.String()}
}
