package wellbeing

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	MinRating = 1
	MaxRating = 5
)

var (
	// ErrInvalidRating is returned for answers outside 1..5.
	ErrInvalidRating = errors.New("rating must be a number from 1 to 5")

	// ErrStorageUnavailable is wrapped by stores when the backing log
	// does not exist yet or cannot be read.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Rating is a single answer to one survey question.
type Rating int

func NewRating(v int) (Rating, error) {
	if v < MinRating || v > MaxRating {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidRating, v)
	}
	return Rating(v), nil
}

// ParseRating reads a rating typed by the user.
func ParseRating(text string) (Rating, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRating, text)
	}
	return NewRating(v)
}

func (r Rating) Valid() bool {
	return r >= MinRating && r <= MaxRating
}

// Entry is one completed survey. Entries are never modified once stored.
type Entry struct {
	Timestamp    time.Time `json:"timestamp"`
	Stress       Rating    `json:"stress"`
	Energy       Rating    `json:"energy"`
	Productivity Rating    `json:"productivity"`
}

func (e Entry) Validate() error {
	for _, r := range []Rating{e.Stress, e.Energy, e.Productivity} {
		if !r.Valid() {
			return fmt.Errorf("%w: got %d", ErrInvalidRating, r)
		}
	}
	return nil
}

// EntryStore is the append-only log of entries. ReadAll returns entries in
// insertion order; an initialized but empty store yields an empty slice.
type EntryStore interface {
	Append(ctx context.Context, entry Entry) error
	ReadAll(ctx context.Context) ([]Entry, error)
}
