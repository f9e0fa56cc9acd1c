package util

import (
	"cmp"
	"slices"

	"golang.org/x/sync/errgroup"
)

type orderedOutput[T any] struct {
	order  int
	output T
}

// ConcurrentMapFuncWithError applies f to each input with bounded
// concurrency and returns the outputs in input order. concurrency <= 0 means
// unlimited, so 0 here means "no limit" rather than "serialize" — callers
// wanting serial execution should pass 1. Grounded on database/concurrent.go's
// ConcurrentMapFuncWithError, generalized to typed outputs collected into an
// index-addressed slice instead of any-typed values.
func ConcurrentMapFuncWithError[Tin any, Tout any](inputs []Tin, concurrency int, f func(Tin) (Tout, error)) ([]Tout, error) {
	eg := errgroup.Group{}
	var sem chan struct{}
	if concurrency > 0 {
		sem = make(chan struct{}, concurrency)
	}

	results := make([]orderedOutput[Tout], len(inputs))
	for i := range inputs {
		i := i
		eg.Go(func() error {
			if sem != nil {
				sem <- struct{}{}
				defer func() { <-sem }()
			}
			out, err := f(inputs[i])
			if err != nil {
				return err
			}
			results[i] = orderedOutput[Tout]{order: i, output: out}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(results, func(a, b orderedOutput[Tout]) int {
		return cmp.Compare(a.order, b.order)
	})

	return TransformSlice(results, func(r orderedOutput[Tout]) Tout { return r.output }), nil
}
