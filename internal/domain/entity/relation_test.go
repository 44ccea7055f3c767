package entity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelation(t *testing.T) {
	ctx := context.Background()
	fetched := 0
	fetch := func(_ context.Context, id uint64) (*Challenge, error) {
		fetched++
		if id == 404 {
			return nil, errors.New("not found")
		}
		return &Challenge{ID: id, Title: "loaded"}, nil
	}

	t.Run("Ref resolves through fetch", func(t *testing.T) {
		rel := Ref[*Challenge](3)

		assert.Equal(t, uint64(3), rel.ID())
		assert.False(t, rel.IsZero())
		assert.False(t, rel.IsPopulated())
		_, ok := rel.Doc()
		assert.False(t, ok)

		doc, err := rel.Resolve(ctx, fetch)
		require.NoError(t, err)
		assert.Equal(t, "loaded", doc.Title)
		assert.Equal(t, 1, fetched)
	})

	t.Run("Populated skips fetch", func(t *testing.T) {
		fetched = 0
		ch := &Challenge{ID: 9, Title: "inline"}
		rel := Populated(ch)

		assert.Equal(t, uint64(9), rel.ID())
		assert.True(t, rel.IsPopulated())

		doc, err := rel.Resolve(ctx, fetch)
		require.NoError(t, err)
		assert.Same(t, ch, doc)
		assert.Equal(t, 0, fetched)
	})

	t.Run("Zero relation", func(t *testing.T) {
		var rel Relation[*Challenge]

		assert.True(t, rel.IsZero())
		_, err := rel.Resolve(ctx, fetch)
		assert.ErrorIs(t, err, ErrEmptyRelation)
	})

	t.Run("Fetch errors propagate", func(t *testing.T) {
		_, err := Ref[*Challenge](404).Resolve(ctx, fetch)
		assert.Error(t, err)
	})
}
