package main

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/panjf2000/ants/v2"
)

func TestSubmitAllRunsEveryBatch(t *testing.T) {
	t.Parallel()

	pool, err := ants.NewPool(4)
	if err != nil {
		t.Fatal(err)
	}
	defer pool.Release()

	done := make([]bool, 50)
	if err := submitAll(pool, len(done), func(i int) { done[i] = true }); err != nil {
		t.Fatalf("submitAll: %v", err)
	}
	for i, ok := range done {
		if !ok {
			t.Fatalf("batch %d not run", i)
		}
	}
}

func TestSubmitAllWaitsForAcceptedOnFailure(t *testing.T) {
	t.Parallel()

	// Один воркер без очереди: вторая задача отклоняется, пока первая работает
	pool, err := ants.NewPool(1, ants.WithNonblocking(true))
	if err != nil {
		t.Fatal(err)
	}
	defer pool.Release()

	var finished atomic.Int32
	err = submitAll(pool, 3, func(int) {
		time.Sleep(50 * time.Millisecond)
		finished.Add(1)
	})
	if !errors.Is(err, ants.ErrPoolOverload) {
		t.Fatalf("err = %v, want ErrPoolOverload", err)
	}
	if got := finished.Load(); got != 1 {
		t.Fatalf("finished = %d, want 1 accepted batch completed before return", got)
	}
}
