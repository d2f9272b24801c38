package espeak

import (
	"encoding/binary"
	"errors"
	"testing"
	"time"

	"github.com/manpreetkaur367/Elexico/speech"
)

// buildWAV assembles a minimal RIFF/WAVE stream for tests.
func buildWAV(sampleRate, channels, bitDepth int, pcm []byte) []byte {
	var b []byte
	b = append(b, "RIFF"...)
	b = binary.LittleEndian.AppendUint32(b, uint32(36+len(pcm)))
	b = append(b, "WAVE"...)

	b = append(b, "fmt "...)
	b = binary.LittleEndian.AppendUint32(b, 16)
	b = binary.LittleEndian.AppendUint16(b, 1) // PCM
	b = binary.LittleEndian.AppendUint16(b, uint16(channels))
	b = binary.LittleEndian.AppendUint32(b, uint32(sampleRate))
	b = binary.LittleEndian.AppendUint32(b, uint32(sampleRate*channels*bitDepth/8))
	b = binary.LittleEndian.AppendUint16(b, uint16(channels*bitDepth/8))
	b = binary.LittleEndian.AppendUint16(b, uint16(bitDepth))

	b = append(b, "data"...)
	b = binary.LittleEndian.AppendUint32(b, uint32(len(pcm)))
	b = append(b, pcm...)
	return b
}

// TestParseWAV tests WAV decoding.
func TestParseWAV(t *testing.T) {
	pcm := make([]byte, 44100)

	t.Run("valid stream", func(t *testing.T) {
		wav, err := parseWAV(buildWAV(22050, 1, 16, pcm))
		if err != nil {
			t.Fatalf("parseWAV() = %v, want nil", err)
		}
		if wav.sampleRate != 22050 || wav.channels != 1 || wav.bitDepth != 16 {
			t.Errorf("parseWAV() format = %d Hz %d ch %d bit, want 22050/1/16",
				wav.sampleRate, wav.channels, wav.bitDepth)
		}
		if len(wav.pcm) != len(pcm) {
			t.Errorf("parseWAV() pcm length = %d, want %d", len(wav.pcm), len(pcm))
		}
	})

	t.Run("streaming header with unknown length", func(t *testing.T) {
		// espeak-ng writes 0xFFFFFFFF chunk sizes when streaming to stdout.
		data := buildWAV(22050, 1, 16, pcm)
		binary.LittleEndian.PutUint32(data[4:8], 0xFFFFFFFF)
		dataChunkSizeOffset := 12 + 8 + 16 + 4
		binary.LittleEndian.PutUint32(data[dataChunkSizeOffset:dataChunkSizeOffset+4], 0xFFFFFFFF)

		wav, err := parseWAV(data)
		if err != nil {
			t.Fatalf("parseWAV() = %v, want nil", err)
		}
		if len(wav.pcm) != len(pcm) {
			t.Errorf("parseWAV() pcm length = %d, want %d", len(wav.pcm), len(pcm))
		}
	})

	t.Run("not a wav", func(t *testing.T) {
		if _, err := parseWAV([]byte("definitely not audio")); !errors.Is(err, errNotWAV) {
			t.Errorf("parseWAV() = %v, want errNotWAV", err)
		}
	})

	t.Run("non-pcm encoding", func(t *testing.T) {
		data := buildWAV(22050, 1, 16, pcm)
		fmtChunkOffset := 12 + 8
		binary.LittleEndian.PutUint16(data[fmtChunkOffset:fmtChunkOffset+2], 3) // IEEE float
		if _, err := parseWAV(data); !errors.Is(err, errNotPCM) {
			t.Errorf("parseWAV() = %v, want errNotPCM", err)
		}
	})

	t.Run("empty data chunk", func(t *testing.T) {
		if _, err := parseWAV(buildWAV(22050, 1, 16, nil)); !errors.Is(err, errEmptyAudio) {
			t.Errorf("parseWAV() = %v, want errEmptyAudio", err)
		}
	})

	t.Run("missing data chunk", func(t *testing.T) {
		data := buildWAV(22050, 1, 16, pcm)[:12+8+16] // header + fmt only
		if _, err := parseWAV(data); !errors.Is(err, errNoData) {
			t.Errorf("parseWAV() = %v, want errNoData", err)
		}
	})
}

// TestWordInterval tests pacer interval estimation.
func TestWordInterval(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		words    int
		want     time.Duration
	}{
		{"even split", 10 * time.Second, 20, 500 * time.Millisecond},
		{"single word", 2 * time.Second, 1, 2 * time.Second},
		{"zero words uses full duration", 3 * time.Second, 0, 3 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wordInterval(tt.duration, tt.words); got != tt.want {
				t.Errorf("wordInterval(%v, %d) = %v, want %v", tt.duration, tt.words, got, tt.want)
			}
		})
	}
}

// TestParseVoices tests parsing of espeak-ng voice listings.
func TestParseVoices(t *testing.T) {
	out := `Pty Language       Age/Gender VoiceName          File                 Other Languages
 5  en-us           M  english-us          en-us
 5  en-gb           M  english             en-gb
 malformed
`
	voices := parseVoices(out)
	if len(voices) != 2 {
		t.Fatalf("parseVoices() returned %d voices, want 2", len(voices))
	}
	if voices[0].ID != "en-us" || voices[0].Name != "english-us" {
		t.Errorf("parseVoices()[0] = %+v, want en-us/english-us", voices[0])
	}
	if voices[1].Lang != "en-gb" {
		t.Errorf("parseVoices()[1].Lang = %q, want en-gb", voices[1].Lang)
	}
}

// TestClampInt tests rate and pitch clamping.
func TestClampInt(t *testing.T) {
	if got := clampInt(500, 80, 450); got != 450 {
		t.Errorf("clampInt(500) = %d, want 450", got)
	}
	if got := clampInt(10, 80, 450); got != 80 {
		t.Errorf("clampInt(10) = %d, want 80", got)
	}
	if got := clampInt(170, 80, 450); got != 170 {
		t.Errorf("clampInt(170) = %d, want 170", got)
	}
}

// TestStopWaitsForPacerExit tests the teardown order used by Close: after
// stop() and a wait on finished, the event channel can be closed without the
// pacer ever sending on it again.
func TestStopWaitsForPacerExit(t *testing.T) {
	for i := 0; i < 200; i++ {
		events := make(chan speech.Event, 1)
		p := newPacer(1, 1000, time.Second, events, nil)
		go p.run()

		// Give the pacer a chance to block on a send.
		time.Sleep(time.Millisecond)

		p.stop()
		select {
		case <-p.finished:
		case <-time.After(2 * time.Second):
			t.Fatal("pacer did not exit after stop()")
		}
		close(events)
	}
}

// TestSynthesizeFailure tests that a failing espeak invocation wraps the
// synthesis sentinel.
func TestSynthesizeFailure(t *testing.T) {
	s := &Synthesizer{cfg: Config{
		Binary:         "/nonexistent/espeak-ng",
		Voice:          "en-us",
		WordsPerMinute: 170,
		Timeout:        time.Second,
	}}

	_, _, err := s.synthesize(speech.Utterance{ID: 1, Text: "hello there"})
	if !errors.Is(err, speech.ErrSynthesisFailed) {
		t.Errorf("synthesize() = %v, want ErrSynthesisFailed", err)
	}
}
