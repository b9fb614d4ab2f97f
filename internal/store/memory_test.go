package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/internal/session"
)

func TestMemoryStore_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s := session.New("s1", []string{"slate", "crane"})

	require.NoError(t, st.Save(ctx, s))
	got, err := st.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Same(t, s, got)
	assert.Equal(t, 1, st.Len())

	require.NoError(t, st.Delete(ctx, "s1"))
	_, err = st.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, st.Delete(ctx, "s1"))
}

func TestMemoryStore_SaveRejectsAnonymous(t *testing.T) {
	st := NewMemoryStore()
	assert.Error(t, st.Save(context.Background(), session.New("", nil)))
	assert.Error(t, st.Save(context.Background(), nil))
}

func TestMemoryStore_Sweep(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	t0 := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := func(at time.Time) session.Option {
		return session.WithClock(func() time.Time { return at })
	}
	words := []string{"slate", "crane"}

	require.NoError(t, st.Save(ctx, session.New("idle", words, clock(t0))))
	require.NoError(t, st.Save(ctx, session.New("edge", words, clock(t0.Add(time.Hour)))))
	require.NoError(t, st.Save(ctx, session.New("busy", words, clock(t0.Add(2*time.Hour)))))

	n, err := st.Sweep(ctx, t0)
	require.NoError(t, err)
	assert.Equal(t, 0, n, "updated exactly at the cutoff survives")

	n, err = st.Sweep(ctx, t0.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	_, err = st.Get(ctx, "idle")
	assert.ErrorIs(t, err, ErrNotFound)

	n, err = st.Sweep(ctx, t0.Add(90*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	_, err = st.Get(ctx, "busy")
	require.NoError(t, err)
	assert.Equal(t, 1, st.Len())
}

func TestMemoryStore_SweepHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	st := NewMemoryStore()
	require.NoError(t, st.Save(ctx, session.New("s1", nil)))
	cancel()

	_, err := st.Sweep(ctx, time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, st.Len())
}
