package board

import "github.com/pkg/errors"

// Sentinel errors for illegal moves, constructed so callers can test with
// errors.Is even after a caller wraps them with coordinate context.
var (
	ErrOccupied    = errors.New("board: point is occupied")
	ErrKoRecapture = errors.New("board: ko recapture forbidden")
	ErrSuicide     = errors.New("board: suicide move")
)
