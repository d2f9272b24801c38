package espeak

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// wavAudio is the decoded payload of a RIFF/WAVE stream.
type wavAudio struct {
	pcm        []byte
	sampleRate int
	channels   int
	bitDepth   int
}

var (
	errNotWAV      = errors.New("not a RIFF/WAVE stream")
	errNoData      = errors.New("WAVE stream has no data chunk")
	errNotPCM      = errors.New("WAVE stream is not PCM encoded")
	errShortChunk  = errors.New("truncated WAVE chunk")
	errEmptyAudio  = errors.New("WAVE stream contains no samples")
	errBadBitDepth = errors.New("unsupported bit depth")
)

// parseWAV decodes a WAVE byte stream into raw PCM plus format parameters.
// espeak-ng writes a streaming header with an unknown (0xFFFFFFFF) length,
// so chunk sizes are clamped to the bytes actually present.
func parseWAV(data []byte) (wavAudio, error) {
	var out wavAudio

	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return out, errNotWAV
	}

	pos := 12
	haveFmt := false
	for pos+8 <= len(data) {
		id := string(data[pos : pos+4])
		size := int(binary.LittleEndian.Uint32(data[pos+4 : pos+8]))
		pos += 8

		remaining := len(data) - pos
		if size > remaining || size < 0 {
			size = remaining
		}

		switch id {
		case "fmt ":
			if size < 16 {
				return out, errShortChunk
			}
			format := binary.LittleEndian.Uint16(data[pos : pos+2])
			if format != 1 { // PCM
				return out, errNotPCM
			}
			out.channels = int(binary.LittleEndian.Uint16(data[pos+2 : pos+4]))
			out.sampleRate = int(binary.LittleEndian.Uint32(data[pos+4 : pos+8]))
			out.bitDepth = int(binary.LittleEndian.Uint16(data[pos+14 : pos+16]))
			haveFmt = true

		case "data":
			if !haveFmt {
				return out, errNoData
			}
			out.pcm = data[pos : pos+size]
			if len(out.pcm) == 0 {
				return out, errEmptyAudio
			}
			if out.bitDepth != 16 {
				return out, fmt.Errorf("%w: %d bits", errBadBitDepth, out.bitDepth)
			}
			return out, nil
		}

		pos += size
		// Chunks are word-aligned.
		if size%2 == 1 {
			pos++
		}
	}

	return out, errNoData
}
