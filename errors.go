package relidx

import (
	"errors"
	"fmt"

	"github.com/hupe1980/relidx/osm"
)

var (
	// ErrStashConsumed is returned when a Stash is used after a Build call
	// has consumed it.
	ErrStashConsumed = errors.New("stash already consumed by a build call")
)

// ErrIDOverflow indicates an object ID that does not fit the index's
// internal 32-bit storage width.
type ErrIDOverflow struct {
	ID osm.ObjectID
}

func (e *ErrIDOverflow) Error() string {
	return fmt.Sprintf("id overflow: %d exceeds the 32-bit internal storage width", e.ID)
}
