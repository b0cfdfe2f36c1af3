// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"errors"
	"fmt"

	"github.com/ik5/wavnorm/audio"
)

// Example_normalize shows the per-type conversion to Linear16.
func Example_normalize() {
	buf := audio.NewFloat32Buffer([]float32{-1.5, -0.5, 0, 0.5, 1.5}, 16000, 1)

	pcm, err := audio.Normalize(buf)
	if err != nil {
		fmt.Printf("normalize error: %v\n", err)
		return
	}

	fmt.Println(pcm.Data)
	// Output: [-32767 -16383 0 16383 32767]
}

// Example_normalizeInt32 shows that 32-bit integers are clamped before the
// 16-bit shift.
func Example_normalizeInt32() {
	buf := audio.NewInt32Buffer([]int32{-1 << 30, -5, 0, 5, 1 << 30}, 16000, 1)

	pcm, _ := audio.Normalize(buf)
	fmt.Println(pcm.Data)
	// Output: [-1 -1 0 0 0]
}

// Example_unsupported demonstrates the error for a type outside the
// supported set.
func Example_unsupported() {
	buf := audio.NewInt8Buffer([]int8{1, 2, 3}, 8000, 1)

	_, err := audio.Normalize(buf)

	var unsupported *audio.UnsupportedFormatError
	if errors.As(err, &unsupported) {
		fmt.Println("cannot convert", unsupported.Name)
	}
	// Output: cannot convert int8
}

// Example_info shows the metadata of a decoded buffer.
func Example_info() {
	buf := audio.NewInt16Buffer(make([]int16, 2*8000), 8000, 2)

	info := buf.Info()
	fmt.Printf("channels=%d sample_rate=%d duration=%.2f\n",
		info.Channels, info.SampleRate, info.Duration)
	// Output: channels=2 sample_rate=8000 duration=1.00
}
