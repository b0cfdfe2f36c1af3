// SPDX-License-Identifier: EPL-2.0

package wavnorm

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/ik5/wavnorm/audio"
	"github.com/ik5/wavnorm/formats/aiff"
	"github.com/ik5/wavnorm/formats/wav"
)

// bytes needed by every registered Sniffer
const sniffLen = 12

var defaultRegistry = NewRegistry()

// NewRegistry returns a registry accepting WAV and AIFF input, in that order.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})

	return reg
}

// Decode detects the container of data and decodes it with the default
// registry. Samples keep the element type stored in the file.
func Decode(data []byte) (*audio.Buffer, error) {
	return DecodeWith(defaultRegistry, data)
}

// DecodeWith is Decode with a caller supplied registry.
func DecodeWith(reg *audio.Registry, data []byte) (*audio.Buffer, error) {
	dec, err := detect(reg, data[:min(len(data), sniffLen)])
	if err != nil {
		return nil, err
	}

	return dec.Decode(bytes.NewReader(data))
}

// DecodeReader is Decode for a stream. r is read to the end.
func DecodeReader(r io.Reader) (*audio.Buffer, error) {
	br := bufio.NewReader(r)

	// a short header fails detection below
	header, _ := br.Peek(sniffLen)

	dec, err := detect(defaultRegistry, header)
	if err != nil {
		return nil, err
	}

	return dec.Decode(br)
}

// DecodeFile opens path and decodes it.
func DecodeFile(path string) (*audio.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening audio file: %w", err)
	}
	defer f.Close()

	return DecodeReader(f)
}

func detect(reg *audio.Registry, header []byte) (audio.Decoder, error) {
	format, ok := reg.Detect(header)
	if !ok {
		return nil, &audio.DecodeError{Err: audio.ErrUnknownContainer}
	}

	dec, _ := reg.Get(format)
	return dec, nil
}

// Normalize converts buf to Linear16. See audio.Normalize for the per-type rules.
func Normalize(buf *audio.Buffer) (*audio.PCM16, error) {
	return audio.Normalize(buf)
}

// Serialize writes pcm as a 16-bit PCM WAV file.
func Serialize(pcm *audio.PCM16) ([]byte, error) {
	return wav.Encode(pcm)
}

// ToLinear16 decodes data, normalizes it and serializes the result.
func ToLinear16(data []byte) ([]byte, error) {
	buf, err := Decode(data)
	if err != nil {
		return nil, err
	}

	pcm, err := Normalize(buf)
	if err != nil {
		return nil, err
	}

	return Serialize(pcm)
}

// Convert reads an audio file from r and writes its Linear16 WAV rendition to w.
// Nothing is written when decoding or normalization fails.
func Convert(w io.Writer, r io.Reader) error {
	buf, err := DecodeReader(r)
	if err != nil {
		return err
	}

	pcm, err := Normalize(buf)
	if err != nil {
		return err
	}

	return wav.WriteWAV16(w, pcm.SampleRate, pcm.Channels, pcm.Data)
}

// ReadInfo decodes data and returns its metadata.
func ReadInfo(data []byte) (audio.Info, error) {
	buf, err := Decode(data)
	if err != nil {
		return audio.Info{}, err
	}

	return buf.Info(), nil
}

// IsLinear16 reports whether buf already holds 16-bit PCM samples.
func IsLinear16(buf *audio.Buffer) bool {
	return buf != nil && buf.Type == audio.Int16
}
