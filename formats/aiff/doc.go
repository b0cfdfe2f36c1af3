// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// AIFF is Apple's standard audio file format, commonly used on macOS.
//
// # Supported Formats
//
// Currently supported:
//   - Uncompressed AIFF, 8, 16, 24 and 32 bit signed integers
//   - Mono and multi-channel
//   - Any sample rate
//
// # Decoding AIFF Files
//
// Use the Decoder to read AIFF files:
//
//	file, _ := os.Open("audio.aif")
//	buf, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// The returned *audio.Buffer keeps the stored width of the samples. Only
// 16 and 32 bit files can be passed on to audio.Normalize; 8 and 24 bit
// buffers are rejected there as unsupported sample formats.
//
// # Error Handling
//
// Failures are reported as *audio.DecodeError and match audio.ErrDecode.
// The wrapped cause is one of:
//   - ErrNotAiffFile: The input is not a valid AIFF file
//   - ErrUnsupportedAiffLayout: The COMM chunk has no channels or sample rate
//
// Other bit depths fail with an *audio.UnsupportedFormatError.
//
// Example:
//
//	_, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    fmt.Println("Not an AIFF file")
//	}
//
// # AIFF vs. WAV
//
// AIFF is similar to WAV but:
//   - Uses big-endian byte order (WAV uses little-endian)
//   - Stores sample rate as 80-bit float (WAV uses 32-bit int)
//   - Both are uncompressed PCM formats
//
// # Limitations
//
// AIFF writing is not supported. Compressed AIFF-C files are not decoded.
//
// # Example: AIFF to WAV Conversion
//
//	aiffFile, _ := os.Open("input.aif")
//	buf, _ := aiff.Decoder{}.Decode(aiffFile)
//
//	pcm, _ := audio.Normalize(buf)
//
//	wavFile, _ := os.Create("output.wav")
//	wav.WriteWAV16(wavFile, pcm.SampleRate, pcm.Channels, pcm.Data)
package aiff
