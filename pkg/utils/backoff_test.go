package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoff_RetriesUntilSuccess(t *testing.T) {
	attempts := 0
	err := NewBackoff(time.Millisecond, 3).Do(context.Background(), func(i int) error {
		attempts++
		if i < 2 {
			return errors.New("falha temporária")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestBackoff_ReturnsLastError(t *testing.T) {
	attempts := 0
	err := NewBackoff(time.Millisecond, 2).Do(context.Background(), func(i int) error {
		attempts++
		return errors.New("falha")
	})

	assert.EqualError(t, err, "falha")
	assert.Equal(t, 3, attempts)
}

func TestBackoff_PermanentStopsImmediately(t *testing.T) {
	sentinel := errors.New("não encontrado")
	attempts := 0
	err := NewBackoff(time.Millisecond, 5).Do(context.Background(), func(i int) error {
		attempts++
		return Permanent(sentinel)
	})

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, attempts)
}

func TestBackoff_StopsWhenContextIsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts := 0
	err := NewBackoff(time.Second, 5).Do(ctx, func(i int) error {
		attempts++
		return errors.New("falha")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 66.67, RoundWithTwoDecimalPlace(200.0/3))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	assert.NoError(t, err)
	assert.Len(t, id, idLength)

	other, err := GenerateID()
	assert.NoError(t, err)
	assert.NotEqual(t, id, other)
}
