package future_test

import (
	"testing"

	"github.com/dmitrymomot/pollkit/pkg/future"
	"github.com/dmitrymomot/pollkit/pkg/wakers"
)

func BenchmarkJoin_AllReady(b *testing.B) {
	for b.Loop() {
		futs := make([]future.Future[int], 16)
		for i := range futs {
			futs[i] = future.Ready(i)
		}
		j := future.JoinAll(futs...)
		if _, done := j.Poll(wakers.Dummy()); !done {
			b.Fatal("join of ready futures must complete on the first poll")
		}
	}
}

func BenchmarkJoin_StaggeredDrive(b *testing.B) {
	for b.Loop() {
		futs := make([]future.Future[int], 8)
		for i := range futs {
			futs[i] = &delayed[int]{value: i, remaining: i}
		}
		j := future.JoinAll(futs...)
		for {
			// Self-waking futures re-arm their readiness bits, so driving
			// with a dummy outer waker in a tight loop is enough.
			if _, done := j.Poll(wakers.Dummy()); done {
				break
			}
		}
	}
}
