package future_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pollkit/pkg/future"
	"github.com/dmitrymomot/pollkit/pkg/wakers"
)

func TestReady(t *testing.T) {
	t.Parallel()

	v, done := future.Ready(42).Poll(wakers.Dummy())
	require.True(t, done)
	assert.Equal(t, 42, v)
}

func TestNever(t *testing.T) {
	t.Parallel()

	f := future.Never[string]()
	for i := 0; i < 3; i++ {
		v, done := f.Poll(wakers.Dummy())
		assert.False(t, done)
		assert.Zero(t, v)
	}
}

func TestPollFunc(t *testing.T) {
	t.Parallel()

	calls := 0
	f := future.PollFunc[int](func(w wakers.Waker) (int, bool) {
		calls++
		if calls < 2 {
			w.Wake()
			return 0, false
		}
		return calls, true
	})

	_, done := f.Poll(wakers.Dummy())
	require.False(t, done)
	v, done := f.Poll(wakers.Dummy())
	require.True(t, done)
	assert.Equal(t, 2, v)
}
