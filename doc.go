// SPDX-License-Identifier: EPL-2.0

// Package wavnorm converts audio files of any common sample format into
// canonical 16-bit linear PCM WAV (Linear16) and reports their metadata.
//
// # Supported Input
//
// Containers are detected from their first bytes:
//   - WAV via formats/wav: integer PCM 8/16/24/32 bit, IEEE float 32/64 bit
//   - AIFF via formats/aiff: integer PCM 8/16/24/32 bit
//
// Only int16, int32, float32 and float64 samples can be normalized. Other
// element types fail with an *audio.UnsupportedFormatError.
//
// # Quick Start
//
// The simplest way to convert a file is ToLinear16:
//
//	data, _ := os.ReadFile("input.wav")
//	out, err := wavnorm.ToLinear16(data)
//
// Convert does the same from an io.Reader to an io.Writer:
//
//	in, _ := os.Open("input.wav")
//	out, _ := os.Create("output.wav")
//	err := wavnorm.Convert(out, in)
//
// # Step by Step
//
// The three stages can be chained explicitly:
//
//	buf, err := wavnorm.Decode(data)     // *audio.Buffer, element type as stored
//	pcm, err := wavnorm.Normalize(buf)   // *audio.PCM16
//	out, err := wavnorm.Serialize(pcm)   // WAV bytes
//
// Normalization rules:
//   - int16 is passed through unchanged
//   - int32 is clamped to [-32768, 32767] and floor-divided by 65536
//   - float32 and float64 are clamped to [-1, 1], scaled by 32767 and truncated
//
// # Metadata
//
// ReadInfo returns channels, sample rate and duration in seconds. The Audio
// type keeps a file around and decodes it on demand:
//
//	a := wavnorm.Open("input.wav")
//	if err := a.Read(); err != nil {
//	    // Handle error
//	}
//	info, _ := a.Info()
//
// Info on an Audio that has not been read returns ErrNotRead.
//
// # Errors
//
// Unparseable input yields an *audio.DecodeError (errors.Is audio.ErrDecode),
// unsupported sample formats an *audio.UnsupportedFormatError
// (errors.Is audio.ErrUnsupportedFormat).
//
// See the individual subpackages for more detailed documentation.
package wavnorm
