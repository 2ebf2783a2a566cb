package upstream

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunLimitedCapsConcurrency(t *testing.T) {
	const limit = 3
	var active, peak int32
	tasks := make([]Task, 12)
	for i := range tasks {
		tasks[i] = func(ctx context.Context) error {
			cur := atomic.AddInt32(&active, 1)
			for {
				old := atomic.LoadInt32(&peak)
				if cur <= old || atomic.CompareAndSwapInt32(&peak, old, cur) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt32(&active, -1)
			return nil
		}
	}

	errs := RunLimited(context.Background(), limit, tasks)
	if len(errs) != len(tasks) {
		t.Fatalf("expected %d results, got %d", len(tasks), len(errs))
	}
	if peak > limit {
		t.Fatalf("并发峰值 %d 超过上限 %d", peak, limit)
	}
}

func TestRunLimitedFailureDoesNotBlockOthers(t *testing.T) {
	boom := errors.New("boom")
	var done int32
	tasks := []Task{
		func(context.Context) error { return boom },
		func(context.Context) error { atomic.AddInt32(&done, 1); return nil },
		func(context.Context) error { atomic.AddInt32(&done, 1); return nil },
	}
	errs := RunLimited(context.Background(), 1, tasks)
	if !errors.Is(errs[0], boom) {
		t.Fatalf("expected first task error, got %v", errs[0])
	}
	if errs[1] != nil || errs[2] != nil {
		t.Fatalf("other tasks should succeed: %v", errs)
	}
	if done != 2 {
		t.Fatalf("expected remaining tasks to run, got %d", done)
	}
}

func TestRunLimitedZeroLimit(t *testing.T) {
	var ran int32
	tasks := []Task{
		func(context.Context) error { atomic.AddInt32(&ran, 1); return nil },
		func(context.Context) error { atomic.AddInt32(&ran, 1); return nil },
	}
	RunLimited(context.Background(), 0, tasks)
	if ran != 2 {
		t.Fatalf("limit 0 should behave as 1, ran=%d", ran)
	}
}

func TestMapPreservesOrder(t *testing.T) {
	in := []int{5, 1, 4, 2, 3}
	out := Map(context.Background(), 2, in, func(_ context.Context, v int) int {
		time.Sleep(time.Duration(v) * time.Millisecond)
		return v * 10
	})
	for i, v := range in {
		if out[i] != v*10 {
			t.Fatalf("out[%d] = %d, want %d", i, out[i], v*10)
		}
	}
}
