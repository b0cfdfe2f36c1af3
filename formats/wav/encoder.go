// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/wavnorm/audio"
	"github.com/orcaman/writerseeker"
)

// Encode serialises pcm as an uncompressed 16-bit PCM WAV file.
func Encode(pcm *audio.PCM16) ([]byte, error) {
	if err := pcm.Validate(); err != nil {
		return nil, err
	}

	buf := &writerseeker.WriterSeeker{}
	enc := gowav.NewEncoder(buf, pcm.SampleRate, 16, pcm.Channels, formatPCM)

	if err := enc.Write(pcm.IntBuffer()); err != nil {
		return nil, fmt.Errorf("writing samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("finalizing header: %w", err)
	}

	out, err := io.ReadAll(buf.Reader())
	if err != nil {
		return nil, fmt.Errorf("reading encoded wav: %w", err)
	}

	return out, nil
}
