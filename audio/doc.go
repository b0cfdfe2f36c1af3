// SPDX-License-Identifier: EPL-2.0

// Package audio provides the core types for converting decoded audio to
// 16-bit linear PCM.
//
// This package contains:
//   - Buffer, a decoded stream tagged with its ElementType
//   - PCM16, the Linear16 result of Normalize
//   - Info, the channels/sample rate/duration metadata of a stream
//   - Decoder and Registry for container decoders
//   - the error taxonomy shared by every format package
//
// # Buffers
//
// A Buffer stores interleaved samples in a go-audio PCMBuffer. The
// ElementType says which typed slice is populated:
//
//	buf := audio.NewFloat32Buffer(samples, 44100, 2)
//	fmt.Println(buf.Type, buf.Frames())
//
// # Normalization
//
// Normalize converts a Buffer to PCM16 using a fixed policy per type:
//
//	int16            identity
//	int32            clamp to [-32768, 32767], then floor-divide by 65536
//	float32, float64 clamp to [-1, 1], multiply by 32767, truncate
//
// The int32 rule narrows the clamped value by 16 bits, so every int32
// input becomes either 0 or -1.
//
// Any other type (uint8, int8, int24, unknown) fails with an
// *UnsupportedFormatError carrying the type name. Normalization never
// returns partial output.
//
// # Format Registry
//
// The registry maps a format key to a Decoder. Decoders that implement
// Sniffer can be selected from the first bytes of the input:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	format, ok := registry.Detect(data)
//
// The registry is safe for concurrent use.
//
// # Error Handling
//
// Decoders return *DecodeError for unparseable input and
// *UnsupportedFormatError for encodings they recognise but cannot provide.
// Both work with errors.Is and errors.As:
//
//	if errors.Is(err, audio.ErrDecode) {
//	    // not an audio container
//	}
package audio
