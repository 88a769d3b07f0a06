// Package trace provides playback over an already-computed step list.
//
// Engines return their steps as an ordered, immutable slice. A Cursor moves
// over that slice by index only: stepping forward or back never triggers
// recomputation and never mutates the steps. Playback pairs a step slice with
// a Cursor for presentation layers that want both.
package trace

import (
	"errors"
	"fmt"
)

// ErrStepOutOfRange is returned by Seek for an index outside [0, Len).
var ErrStepOutOfRange = errors.New("trace: step index out of range")

// Cursor is a position over n steps. The zero value is an empty cursor.
//
// For n == 0 every move is a no-op and Index returns 0.
type Cursor struct {
	pos int
	n   int
}

// NewCursor returns a cursor positioned at step 0 of n steps.
func NewCursor(n int) *Cursor {
	if n < 0 {
		n = 0
	}

	return &Cursor{n: n}
}

// Len returns the number of steps.
func (c *Cursor) Len() int { return c.n }

// Index returns the current 0-based step index.
func (c *Cursor) Index() int { return c.pos }

// AtStart reports whether the cursor is on the first step.
func (c *Cursor) AtStart() bool { return c.pos == 0 }

// AtEnd reports whether the cursor is on the last step (or the trace is empty).
func (c *Cursor) AtEnd() bool { return c.n == 0 || c.pos == c.n-1 }

// Next advances one step and reports whether the cursor moved.
func (c *Cursor) Next() bool {
	if c.AtEnd() {
		return false
	}
	c.pos++

	return true
}

// Prev moves back one step and reports whether the cursor moved.
func (c *Cursor) Prev() bool {
	if c.AtStart() {
		return false
	}
	c.pos--

	return true
}

// First jumps to step 0.
func (c *Cursor) First() { c.pos = 0 }

// Last jumps to the final step.
func (c *Cursor) Last() {
	if c.n > 0 {
		c.pos = c.n - 1
	}
}

// Seek jumps to step i.
func (c *Cursor) Seek(i int) error {
	if i < 0 || i >= c.n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrStepOutOfRange, i, c.n)
	}
	c.pos = i

	return nil
}

// Playback binds a read-only step slice to a Cursor.
type Playback[S any] struct {
	steps []S
	*Cursor
}

// NewPlayback returns a Playback over steps, positioned at step 0.
// The slice is not copied; callers must not mutate it afterwards.
func NewPlayback[S any](steps []S) *Playback[S] {
	return &Playback[S]{steps: steps, Cursor: NewCursor(len(steps))}
}

// Current returns the step under the cursor. ok is false for an empty trace.
func (p *Playback[S]) Current() (step S, ok bool) {
	if p.Len() == 0 {
		return step, false
	}

	return p.steps[p.Index()], true
}

// At returns step i without moving the cursor.
func (p *Playback[S]) At(i int) (step S, err error) {
	if i < 0 || i >= len(p.steps) {
		return step, fmt.Errorf("%w: %d not in [0,%d)", ErrStepOutOfRange, i, len(p.steps))
	}

	return p.steps[i], nil
}
