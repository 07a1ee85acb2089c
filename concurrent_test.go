package synclistx

import (
	"sync"
	"testing"
)

func policyVariants[T any]() map[string]Option[T] {
	return map[string]Option[T]{
		"exclusive":     WithExclusiveLock[T](),
		"shared":        WithSharedLock[T](),
		"transactional": WithTransactions[T](),
	}
}

// Balanced workloads must leave the count where it started, whatever the
// policy.
func TestBalancedWritersPreserveCount(t *testing.T) {
	workers := 8
	rounds := 200
	if testing.Short() {
		workers, rounds = 4, 50
	}

	for name, opt := range policyVariants[int]() {
		t.Run(name, func(t *testing.T) {
			l, err := FromSlice([]int{1, 2, 3, 4}, opt)
			if err != nil {
				t.Fatal(err)
			}
			initial := l.Len()

			var wg sync.WaitGroup
			for w := 0; w < workers; w++ {
				wg.Add(1)
				go func(worker int) {
					defer wg.Done()
					for i := 0; i < rounds; i++ {
						l.Add(worker)
						// Target index may race out of range with other
						// removers; retry until one sticks so inserts and
						// removes stay balanced.
						for {
							if _, err := l.RemoveAt(0); err == nil {
								break
							}
						}
					}
				}(w)
			}
			wg.Wait()

			if got := l.Len(); got != initial {
				t.Errorf("got Len=%d want %d", got, initial)
			}
		})
	}
}

func TestConcurrentMixedOps(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping stress test in short mode")
	}

	for name, opt := range policyVariants[int]() {
		t.Run(name, func(t *testing.T) {
			l, err := NewWithCapacity[int](64, opt)
			if err != nil {
				t.Fatal(err)
			}
			for i := 0; i < 32; i++ {
				l.Add(i)
			}

			var wg sync.WaitGroup
			for w := 0; w < 8; w++ {
				wg.Add(1)
				go func(worker int) {
					defer wg.Done()
					for i := 0; i < 300; i++ {
						switch i % 6 {
						case 0:
							l.Add(worker*1000 + i)
						case 1:
							_ = l.Contains(worker)
						case 2:
							_ = l.IndexOf(i)
						case 3:
							_, _ = l.At(i % 32)
						case 4:
							l.Remove(worker*1000 + i - 6)
						case 5:
							for v := range l.All() {
								if v < 0 {
									t.Error("observed torn element")
								}
							}
						}
					}
				}(w)
			}
			wg.Wait()
		})
	}
}

// Readers under the shared policies run concurrently while no write is in
// flight.
func TestConcurrentReadersOverlap(t *testing.T) {
	for _, name := range []string{"shared", "transactional"} {
		opt := policyVariants[int]()[name]
		t.Run(name, func(t *testing.T) {
			l, err := FromSlice([]int{1, 2, 3}, opt, WithLiveIterators[int]())
			if err != nil {
				t.Fatal(err)
			}

			// One live iterator holds the shared lock open...
			it := l.Iterator()
			if !it.Next() {
				t.Fatal("Next=false")
			}
			defer it.Close()

			// ...and plain reads still go through: shared acquisitions
			// overlap.
			done := make(chan bool, 1)
			go func() {
				done <- l.Contains(2)
			}()
			if !<-done {
				t.Error("concurrent read failed under shared lease")
			}
		})
	}
}

func TestConcurrentSnapshotIteration(t *testing.T) {
	l, err := FromSlice([]int{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	stop := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				l.Add(9)
				for {
					if _, err := l.RemoveAt(0); err == nil {
						break
					}
				}
			}
		}
	}()

	for i := 0; i < 100; i++ {
		snap := l.Snapshot()
		// A snapshot is internally consistent whatever the writer does.
		if len(snap) == 0 {
			t.Fatal("snapshot lost all elements")
		}
	}
	close(stop)
	wg.Wait()
}
