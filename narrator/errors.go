package narrator

import "errors"

// Player errors.
var (
	ErrNoText       = errors.New("no narration text set")
	ErrPlayerClosed = errors.New("player has been closed")
)
