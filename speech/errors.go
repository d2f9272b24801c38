package speech

import "errors"

// Synthesizer errors.
var (
	ErrSynthesizerClosed = errors.New("synthesizer has been closed")
	ErrNoAudioDevice     = errors.New("no audio device available")
	ErrSynthesisFailed   = errors.New("speech synthesis failed")
)
