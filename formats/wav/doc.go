// SPDX-License-Identifier: EPL-2.0

// Package wav reads WAV files of any common sample format and writes
// 16-bit PCM WAV files.
//
// # Decoding WAV Files
//
// The Decoder parses the RIFF container with github.com/go-audio/riff and
// keeps the samples in their stored element type:
//
//	file, _ := os.Open("audio.wav")
//	buf, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	fmt.Println(buf.Type, buf.Channels(), buf.SampleRate())
//
// Supported encodings:
//   - Integer PCM, 8, 16, 24 and 32 bits
//   - IEEE float, 32 and 64 bits
//   - WAVE_FORMAT_EXTENSIBLE wrapping either of the above
//
// Anything else, such as A-law or mu-law, fails with an
// *audio.UnsupportedFormatError naming the encoding.
//
// # Writing WAV Files
//
// Encode produces a complete file in memory through the github.com/go-audio/wav
// encoder:
//
//	data, err := wav.Encode(&audio.PCM16{Data: samples, SampleRate: 8000, Channels: 1})
//
// WriteWAV16 streams the same layout to any io.Writer without seeking:
//
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 8000, 1, samples)
//
// # Error Handling
//
// Decode failures are reported as *audio.DecodeError and match
// audio.ErrDecode. The wrapped cause is one of:
//   - ErrNotWavFile: the input has no RIFF/WAVE header
//   - ErrInvalidFmtChunk: the fmt chunk is truncated or declares no channels
//   - ErrMissingFmtChunk, ErrMissingDataChunk: a required chunk is absent
//   - ErrUnsupportedWavLayout: the data chunk precedes the fmt chunk
//
// Example:
//
//	_, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
//
// # File Format
//
// Files written by this package consist of:
//   - RIFF header (12 bytes)
//   - fmt chunk (24 bytes): audio format 1, sample rate, channels, 16 bits
//   - data chunk: little-endian interleaved samples
package wav
