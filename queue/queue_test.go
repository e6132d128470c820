package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueRunsRegisteredHandler(t *testing.T) {
	q := New(8)

	var mu sync.Mutex
	var got []any
	done := make(chan struct{}, 3)
	q.Register("greet", func(_ context.Context, payload any) error {
		mu.Lock()
		got = append(got, payload)
		mu.Unlock()
		done <- struct{}{}
		return nil
	})
	q.Start(2)

	q.Enqueue("greet", "a")
	q.Enqueue("greet", "b")
	q.Enqueue("greet", "c")
	for i := 0; i < 3; i++ {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("job did not run")
		}
	}

	mu.Lock()
	defer mu.Unlock()
	assert.ElementsMatch(t, []any{"a", "b", "c"}, got)
}

func TestQueueUnknownKindIsDropped(t *testing.T) {
	q := New(2)
	q.Start(1)
	q.Enqueue("nobody-handles-this", nil)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, q.Shutdown(ctx))
}

func TestQueueFullBufferDropsInsteadOfBlocking(t *testing.T) {
	q := New(1)
	// no workers started: the single buffer slot fills and stays full

	q.Enqueue("k", 1)
	finished := make(chan struct{})
	go func() {
		q.Enqueue("k", 2)
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked on a full buffer")
	}
}

func TestQueueShutdownDrains(t *testing.T) {
	q := New(16)

	var mu sync.Mutex
	ran := 0
	q.Register("slow", func(_ context.Context, _ any) error {
		time.Sleep(10 * time.Millisecond)
		mu.Lock()
		ran++
		mu.Unlock()
		return nil
	})
	q.Start(2)
	for i := 0; i < 10; i++ {
		q.Enqueue("slow", i)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, q.Shutdown(ctx))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 10, ran)

	// enqueue after shutdown is a no-op, not a panic
	q.Enqueue("slow", 99)
	assert.NoError(t, q.Shutdown(context.Background()))
}

func TestQueueRegisterAfterStartIgnored(t *testing.T) {
	q := New(2)
	q.Start(1)

	ran := make(chan struct{}, 1)
	q.Register("late", func(_ context.Context, _ any) error {
		ran <- struct{}{}
		return nil
	})
	q.Enqueue("late", nil)

	select {
	case <-ran:
		t.Fatal("late handler should not run")
	case <-time.After(100 * time.Millisecond):
	}
}
