package unate

import (
	"runtime"
	"sync"

	"github.com/bits-and-blooms/bitset"

	"github.com/lsynth/lsynth/bdd"
)

func boundedPoolSize(n int) int {
	if n <= 0 {
		return 1
	}
	if p := runtime.GOMAXPROCS(0); n > p {
		return p
	}
	return n
}

// ClassifyOutputsParallel classifies every output concurrently, one
// goroutine per output, and merges each output's variable-support
// bitset into a single combined bitset under a mutex (§5).
func ClassifyOutputsParallel(m *bdd.Manager, outputs []bdd.Ref, numVars int) ([][]Class, *bitset.BitSet, error) {
	if m == nil {
		return nil, nil, ErrNilManager
	}

	results := make([][]Class, len(outputs))
	errs := make([]error, len(outputs))
	combined := bitset.New(uint(numVars))

	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, boundedPoolSize(len(outputs)))

	for i, f := range outputs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, f bdd.Ref) {
			defer wg.Done()
			defer func() { <-sem }()

			classes, err := Classify(m, f, numVars)
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = classes

			support := bitset.New(uint(numVars))
			for v, c := range classes {
				if c != Independent {
					support.Set(uint(v))
				}
			}

			mu.Lock()
			combined.InPlaceUnion(support)
			mu.Unlock()
		}(i, f)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, nil, err
		}
	}
	return results, combined, nil
}

type inputUsage struct {
	v    int
	used bool
}

// ClassifyInputsParallel spawns one goroutine per input variable, each
// determining independently of the others whether that variable is
// non-independent in any output. The per-task results are collected off
// a channel and ORed into one bitset by a single reader, so no shared
// state is ever written concurrently (§5).
func ClassifyInputsParallel(m *bdd.Manager, outputs []bdd.Ref, numVars int) (*bitset.BitSet, error) {
	if m == nil {
		return nil, ErrNilManager
	}

	perOutput := make([][]Class, len(outputs))
	for i, f := range outputs {
		classes, err := Classify(m, f, numVars)
		if err != nil {
			return nil, err
		}
		perOutput[i] = classes
	}

	usage := make(chan inputUsage, numVars)
	var wg sync.WaitGroup
	sem := make(chan struct{}, boundedPoolSize(numVars))

	for v := 0; v < numVars; v++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(v int) {
			defer wg.Done()
			defer func() { <-sem }()

			used := false
			for _, classes := range perOutput {
				if classes[v] != Independent {
					used = true
					break
				}
			}
			usage <- inputUsage{v: v, used: used}
		}(v)
	}
	go func() {
		wg.Wait()
		close(usage)
	}()

	support := bitset.New(uint(numVars))
	for r := range usage {
		if r.used {
			support.Set(uint(r.v))
		}
	}
	return support, nil
}
