package mapper

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID    uint
	Value int
}

type entity struct {
	Label string
}

func TestMapSlice(t *testing.T) {
	assert.Nil(t, MapSlice[int, string](nil, strconv.Itoa))
	assert.Equal(t, []string{}, MapSlice([]int{}, strconv.Itoa))
	assert.Equal(t, []string{"1", "2"}, MapSlice([]int{1, 2}, strconv.Itoa))
}

func TestMapSlicePtrWithID(t *testing.T) {
	toEntity := func(r *row) (*entity, error) {
		if r.Value < 0 {
			return nil, errors.New("negative value")
		}
		if r.Value == 0 {
			return nil, nil
		}
		return &entity{Label: strconv.Itoa(r.Value)}, nil
	}
	getID := func(r *row) uint { return r.ID }

	t.Run("nil input returns nil", func(t *testing.T) {
		got, err := MapSlicePtrWithID[row, entity, uint](nil, toEntity, getID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("skips nil inputs and outputs", func(t *testing.T) {
		got, err := MapSlicePtrWithID([]*row{{ID: 1, Value: 5}, nil, {ID: 2, Value: 0}}, toEntity, getID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "5", got[0].Label)
	})

	t.Run("error names the failing id", func(t *testing.T) {
		_, err := MapSlicePtrWithID([]*row{{ID: 1, Value: 1}, {ID: 42, Value: -1}}, toEntity, getID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "item ID 42")
		assert.Contains(t, err.Error(), "negative value")
	})
}
