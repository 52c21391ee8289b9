package ringqueue

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardedSerialisesCalls(t *testing.T) {
	q, _ := newTestQueue(t)
	g := NewGuarded(q)

	const (
		workers   = 8
		perWorker = 200
	)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				g.Do(func(q *Queue) {
					if i%2 == 0 {
						q.InsertHead(fmt.Sprint(w))
					} else {
						q.InsertTail(fmt.Sprint(w))
					}
				})
			}
		}(w)
	}
	wg.Wait()

	g.Do(func(q *Queue) {
		assert.Equal(t, workers*perWorker, q.Size())
		assert.True(t, q.Valid())
	})
}

func TestMergeGuarded(t *testing.T) {
	ar := newTestArena(t)
	a := newTestQueueIn(t, ar, "1", "3", "5")
	b := newTestQueueIn(t, ar, "2", "4")

	ga, gb := NewGuarded(a), NewGuarded(b)
	require.Equal(t, 5, MergeGuarded(false, gb, nil, ga))

	requireValues(t, b, "1", "2", "3", "4", "5")
	requireValues(t, a)
	assert.Zero(t, MergeGuarded(false))
}

func TestMergeGuardedOverlappingDoesNotDeadlock(t *testing.T) {
	ar := newTestArena(t)
	queues := make([]*Guarded, 3)
	for i := range queues {
		queues[i] = NewGuarded(newTestQueueIn(t, ar, fmt.Sprint(i)))
	}

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			MergeGuarded(false, queues[0], queues[1], queues[2])
		}()
		go func() {
			defer wg.Done()
			MergeGuarded(true, queues[2], queues[1], queues[0])
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("overlapping guarded merges deadlocked")
	}

	total := 0
	for _, g := range queues {
		g.Do(func(q *Queue) {
			require.True(t, q.Valid())
			total += q.Size()
		})
	}
	assert.Equal(t, 3, total, "merges must not lose or duplicate elements")
}
