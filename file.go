// SPDX-License-Identifier: EPL-2.0

package wavnorm

import (
	"fmt"
	"os"

	"github.com/ik5/wavnorm/audio"
)

// Audio is a lazily decoded audio file, held either as bytes or as a path.
// It is not safe for concurrent use.
type Audio struct {
	data []byte
	path string

	buf *audio.Buffer
}

// New wraps an in-memory file. Nothing is decoded until Read.
func New(data []byte) *Audio {
	return &Audio{data: data}
}

// Open refers to a file on disk. The file is not touched until Read.
func Open(path string) *Audio {
	return &Audio{path: path}
}

// Read decodes the file. A failed Read leaves a previously decoded buffer in place.
func (a *Audio) Read() error {
	data := a.data
	if data == nil && a.path != "" {
		var err error
		data, err = os.ReadFile(a.path)
		if err != nil {
			return fmt.Errorf("reading audio file: %w", err)
		}
	}

	buf, err := Decode(data)
	if err != nil {
		return err
	}

	a.buf = buf
	return nil
}

// Info returns channels, sample rate and duration, or ErrNotRead before Read.
func (a *Audio) Info() (audio.Info, error) {
	if a.buf == nil {
		return audio.Info{}, ErrNotRead
	}

	return a.buf.Info(), nil
}

// Buffer returns the decoded samples, or ErrNotRead before Read.
func (a *Audio) Buffer() (*audio.Buffer, error) {
	if a.buf == nil {
		return nil, ErrNotRead
	}

	return a.buf, nil
}

// Linear16 returns the file as a 16-bit PCM WAV, reading it first if needed.
func (a *Audio) Linear16() ([]byte, error) {
	if a.buf == nil {
		if err := a.Read(); err != nil {
			return nil, err
		}
	}

	pcm, err := Normalize(a.buf)
	if err != nil {
		return nil, err
	}

	return Serialize(pcm)
}
