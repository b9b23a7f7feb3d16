package storage

import (
	"github.com/pingcap-incubator/noticeboard/proto/pkg/noticeboardpb"
	"github.com/pkg/errors"
)

// ErrNoteNotFound is returned by GetByTitle when no note carries the title.
var ErrNoteNotFound = errors.New("note not found")

// Storage represents the single owner of the board. Notes are kept in insertion order and are never reordered or
// removed. Implementations must make every appended note visible to readers either completely or not at all.
type Storage interface {
	// Append adds notes to the end of the board, in argument order.
	Append(notes ...*noticeboardpb.Note)
	// GetByTitle returns a copy of the first note, in insertion order, whose title equals title.
	GetByTitle(title string) (*noticeboardpb.Note, error)
	// Snapshot returns the board as it is now. The result is shared with the storage and must not be modified; later
	// appends are not visible through it.
	Snapshot() []*noticeboardpb.Note
	Len() int
}
