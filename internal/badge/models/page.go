package models

import (
	dErrors "badgeregistry/pkg/domain-errors"
)

// Unbounded is the Window limit used when the caller gave none.
const Unbounded = -1

// PageRequest is the raw (from_index, limit) pair of an enumeration call.
// A nil Limit means no cap.
type PageRequest struct {
	FromIndex uint64
	Limit     *uint64
}

// Window is a validated slice of an ordered collection.
type Window struct {
	Offset int
	Limit  int
}

// CheckLimit rejects an explicit zero limit.
func (p PageRequest) CheckLimit() error {
	if p.Limit != nil && *p.Limit == 0 {
		return dErrors.New(dErrors.CodeInvalidLimit, "cannot provide limit of 0")
	}
	return nil
}

// Window validates the request against a collection of size total. An offset
// equal to total is valid and selects nothing.
func (p PageRequest) Window(total int) (Window, error) {
	if p.FromIndex > uint64(total) {
		return Window{}, dErrors.New(dErrors.CodeOutOfRange, "out of bounds, please use a smaller from_index")
	}
	if err := p.CheckLimit(); err != nil {
		return Window{}, err
	}
	w := Window{Offset: int(p.FromIndex), Limit: Unbounded}
	if p.Limit != nil && *p.Limit < uint64(total) {
		w.Limit = int(*p.Limit)
	}
	return w, nil
}

// Bounds returns the [start, end) indexes the window selects out of n items.
func (w Window) Bounds(n int) (int, int) {
	start := min(w.Offset, n)
	end := n
	if w.Limit != Unbounded && start+w.Limit < end {
		end = start + w.Limit
	}
	return start, end
}

// Slice applies the window to items.
func Slice[T any](items []T, w Window) []T {
	start, end := w.Bounds(len(items))
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}
