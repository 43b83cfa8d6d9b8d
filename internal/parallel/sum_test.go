package parallel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSumIndependentOfWorkers(t *testing.T) {
	items := make([]int, 1000)
	for i := range items {
		items[i] = i
	}
	square := func(v int) (int, error) { return v * v, nil }

	want, err := Sum(context.Background(), items, 1, square)
	if err != nil {
		t.Fatalf("sequential Sum() error: %v", err)
	}

	for _, workers := range []int{0, 2, 3, 7, 16, 5000} {
		got, err := Sum(context.Background(), items, workers, square)
		if err != nil {
			t.Fatalf("Sum(workers=%d) error: %v", workers, err)
		}
		if got != want {
			t.Errorf("Sum(workers=%d) = %d, expected %d", workers, got, want)
		}
	}
}

func TestSumVisitsEveryItemOnce(t *testing.T) {
	items := make([]int, 257)
	var calls atomic.Int64

	_, err := Sum(context.Background(), items, 8, func(int) (int, error) {
		calls.Add(1)
		return 0, nil
	})
	if err != nil {
		t.Fatalf("Sum() error: %v", err)
	}
	if calls.Load() != int64(len(items)) {
		t.Errorf("fn called %d times, expected %d", calls.Load(), len(items))
	}
}

func TestSumEmpty(t *testing.T) {
	got, err := Sum(context.Background(), []string(nil), 4, func(string) (int, error) { return 1, nil })
	if err != nil || got != 0 {
		t.Errorf("Sum(nil) = (%d, %v), expected (0, nil)", got, err)
	}
}

func TestSumPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}

	for _, workers := range []int{1, 4} {
		_, err := Sum(context.Background(), items, workers, func(v int) (int, error) {
			if v == 6 {
				return 0, boom
			}
			return v, nil
		})
		if !errors.Is(err, boom) {
			t.Errorf("Sum(workers=%d) error = %v, expected boom", workers, err)
		}
	}
}

func TestSumCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Sum(ctx, []int{1, 2, 3}, 2, func(v int) (int, error) { return v, nil })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Sum() error = %v, expected context.Canceled", err)
	}
}

func TestCount(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	even := func(v int) (bool, error) { return v%2 == 0, nil }

	for _, workers := range []int{1, 3} {
		got, err := Count(context.Background(), items, workers, even)
		if err != nil {
			t.Fatalf("Count() error: %v", err)
		}
		if got != 5 {
			t.Errorf("Count(workers=%d) = %d, expected 5", workers, got)
		}
	}
}
