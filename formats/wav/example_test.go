// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ik5/wavnorm/audio"
	"github.com/ik5/wavnorm/formats/wav"
	"github.com/ik5/wavnorm/internal/audiotest"
)

// Example_decoding demonstrates decoding a WAV file.
func Example_decoding() {
	// Create a sample WAV file
	samples := []int16{100, 200, 300, 400, 500}
	wavData := new(bytes.Buffer)
	_ = wav.WriteWAV16(wavData, 16000, 1, samples)

	buf, err := wav.Decoder{}.Decode(wavData)
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	fmt.Printf("Type: %s\n", buf.Type)
	fmt.Printf("Sample rate: %d Hz\n", buf.SampleRate())
	fmt.Printf("Channels: %d\n", buf.Channels())
	fmt.Printf("Samples: %v\n", buf.PCM.I16)
	// Output:
	// Type: int16
	// Sample rate: 16000 Hz
	// Channels: 1
	// Samples: [100 200 300 400 500]
}

// Example_decodingFloat shows that float files keep their element type.
func Example_decodingFloat() {
	data := audiotest.Float32(48000, 2, []float32{0.5, -0.5, 0.25, -0.25})

	buf, err := wav.Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	fmt.Printf("%s, %d frames\n", buf.Type, buf.Frames())
	// Output: float32, 2 frames
}

// Example_encoding demonstrates writing a WAV file.
func Example_encoding() {
	samples := make([]int16, 1000)
	for i := range samples {
		samples[i] = int16((i % 100) * 100)
	}

	output := new(bytes.Buffer)
	err := wav.WriteWAV16(output, 8000, 1, samples)
	if err != nil {
		fmt.Printf("Write error: %v\n", err)
		return
	}

	fmt.Printf("Wrote %d bytes\n", output.Len())
	fmt.Printf("Data: %d bytes\n", len(samples)*2)
	// Output:
	// Wrote 2044 bytes
	// Data: 2000 bytes
}

// ExampleEncode serialises a normalized buffer in memory.
func ExampleEncode() {
	pcm := &audio.PCM16{Data: make([]int16, 44100), SampleRate: 44100, Channels: 1}

	data, err := wav.Encode(pcm)
	if err != nil {
		fmt.Printf("Encode error: %v\n", err)
		return
	}

	fmt.Printf("%s/%s, %d bytes\n", data[0:4], data[8:12], len(data))
	// Output: RIFF/WAVE, 88244 bytes
}

// Example_errorNotWAV shows handling of invalid WAV files.
func Example_errorNotWAV() {
	invalidData := bytes.NewReader([]byte("This is not a WAV file"))

	_, err := wav.Decoder{}.Decode(invalidData)

	if errors.Is(err, wav.ErrNotWavFile) && errors.Is(err, audio.ErrDecode) {
		fmt.Println("Detected: Not a valid WAV file")
	} else if err != nil {
		fmt.Printf("Other error: %v\n", err)
	}
	// Output: Detected: Not a valid WAV file
}

// Example_unsupportedEncoding shows the error for a companded file.
func Example_unsupportedEncoding() {
	data := audiotest.WAV{
		FormatTag:     audiotest.FormatALaw,
		Channels:      1,
		SampleRate:    8000,
		BitsPerSample: 8,
		Data:          []byte{0xd5, 0xd5},
	}.Bytes()

	_, err := wav.Decoder{}.Decode(bytes.NewReader(data))

	var unsupported *audio.UnsupportedFormatError
	if errors.As(err, &unsupported) {
		fmt.Println(unsupported.Name)
	}
	// Output: wav format tag 0x0006
}

// Example_sampleRates demonstrates different sample rates.
func Example_sampleRates() {
	rates := []int{8000, 16000, 44100, 48000}

	for _, rate := range rates {
		// One second of audio
		samples := make([]int16, rate)

		wavData := new(bytes.Buffer)
		_ = wav.WriteWAV16(wavData, rate, 1, samples)

		buf, _ := wav.Decoder{}.Decode(wavData)

		fmt.Printf("Rate: %5d Hz, duration %.1fs\n", buf.SampleRate(), buf.Info().Duration)
	}
	// Output:
	// Rate:  8000 Hz, duration 1.0s
	// Rate: 16000 Hz, duration 1.0s
	// Rate: 44100 Hz, duration 1.0s
	// Rate: 48000 Hz, duration 1.0s
}
