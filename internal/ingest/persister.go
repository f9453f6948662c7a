package ingest

import (
	"context"
	"fmt"
)

// SaveFunc stores one record in its own unit of work
type SaveFunc[T any] func(ctx context.Context, record *T) error

// Persister is the per-record commit boundary. A failure or panic inside
// save is returned as an error and never reaches sibling rows.
type Persister[T any] struct {
	save SaveFunc[T]
}

// NewPersister wraps save
func NewPersister[T any](save SaveFunc[T]) Persister[T] {
	return Persister[T]{save: save}
}

// Persist saves record and converts panics into errors
func (p Persister[T]) Persist(ctx context.Context, record *T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while saving record: %v", r)
		}
	}()
	return p.save(ctx, record)
}
