package entity

import (
	"context"
	"errors"
)

// Identified is implemented by every document that can sit behind a Relation
type Identified interface {
	GetID() uint64
}

// Relation is a reference to another document: either a bare id or the
// populated document itself. The zero Relation means "no reference".
type Relation[T Identified] struct {
	id        uint64
	doc       T
	populated bool
}

// Ref returns an unpopulated relation pointing at id
func Ref[T Identified](id uint64) Relation[T] {
	return Relation[T]{id: id}
}

// Populated returns a relation carrying the document
func Populated[T Identified](doc T) Relation[T] {
	return Relation[T]{id: doc.GetID(), doc: doc, populated: true}
}

// ID returns the referenced id in both forms
func (r Relation[T]) ID() uint64 {
	return r.id
}

// IsZero reports whether the relation references nothing
func (r Relation[T]) IsZero() bool {
	return r.id == 0
}

// IsPopulated reports whether the document is already loaded
func (r Relation[T]) IsPopulated() bool {
	return r.populated
}

// Doc returns the populated document, if any
func (r Relation[T]) Doc() (T, bool) {
	return r.doc, r.populated
}

// ErrEmptyRelation is returned when resolving a zero Relation
var ErrEmptyRelation = errors.New("relation is empty")

// Resolve returns the populated document or loads it with fetch.
func (r Relation[T]) Resolve(ctx context.Context, fetch func(ctx context.Context, id uint64) (T, error)) (T, error) {
	if r.populated {
		return r.doc, nil
	}
	if r.IsZero() {
		var zero T
		return zero, ErrEmptyRelation
	}
	return fetch(ctx, r.id)
}
