package async

import (
	"context"
	"runtime/debug"
	"sync"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Outcome is the settled result of one concurrent task: either a value
// or an error, never both. A panic inside the task settles as an error.
type Outcome[T any] struct {
	Value T
	Err   error
}

// OK reports whether the task settled successfully
func (o Outcome[T]) OK() bool {
	return o.Err == nil
}

// Gather runs fn once per index concurrently and waits for every task to
// settle. It never short-circuits: a failing or panicking task only
// affects its own slot. Outcomes are returned in input order.
func Gather[T any](ctx context.Context, n int, fn func(ctx context.Context, i int) (T, error)) []Outcome[T] {
	if n <= 0 {
		return nil
	}

	outcomes := make([]Outcome[T], n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					stack := debug.Stack()
					ctxlog.From(ctx).Error("Panic in gathered task",
						"recover", r,
						"stack", string(stack),
					)
					outcomes[i].Err = goerr.New("panic in gathered task", goerr.V("recover", r))
				}
			}()

			v, err := fn(ctx, i)
			outcomes[i] = Outcome[T]{Value: v, Err: err}
		}(i)
	}
	wg.Wait()

	return outcomes
}

// GatherMap runs fn once per key concurrently and returns the settled
// outcome per key. Duplicate keys are executed once.
func GatherMap[K comparable, T any](ctx context.Context, keys []K, fn func(ctx context.Context, key K) (T, error)) map[K]Outcome[T] {
	distinct := make([]K, 0, len(keys))
	seen := make(map[K]bool, len(keys))
	for _, k := range keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		distinct = append(distinct, k)
	}

	outcomes := Gather(ctx, len(distinct), func(ctx context.Context, i int) (T, error) {
		return fn(ctx, distinct[i])
	})

	result := make(map[K]Outcome[T], len(distinct))
	for i, k := range distinct {
		result[k] = outcomes[i]
	}
	return result
}
