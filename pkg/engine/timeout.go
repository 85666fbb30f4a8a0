package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/otakup0pe/fabz/pkg/config"
)

// EvalTimeout is the hard limit for a single script evaluation.
const EvalTimeout = 5 * time.Second

type evalResult struct {
	params config.Params
	errors []EvalError
	err    error
}

// waitWithTimeout waits for a result from ch, giving up after
// EvalTimeout. The generation counter discards stale results: on
// timeout the goroutine may still be running, and whatever it
// eventually produces must not be mistaken for a newer evaluation's
// result.
func waitWithTimeout(
	ch <-chan evalResult,
	gen uint64,
	mu *sync.Mutex,
	currentGen *uint64,
) (config.Params, []EvalError, error) {
	timer := time.NewTimer(EvalTimeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		mu.Lock()
		current := *currentGen
		mu.Unlock()
		if gen != current {
			return config.Params{}, nil, fmt.Errorf("evaluation superseded by newer request")
		}
		return res.params, res.errors, res.err

	case <-timer.C:
		return config.Params{}, nil, fmt.Errorf("evaluation timed out after %s", EvalTimeout)
	}
}
