// Package engine evaluates Lisp parameter scripts. A script starts
// from a named preset (or the caller's base parameters) and adjusts
// individual values, so one file can describe a radio variant without
// recompiling. Scripts run in a sandboxed zygomys environment.
package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/otakup0pe/fabz/pkg/config"
)

// EvalError is a non-fatal error from a script, such as a parse error
// or an unknown parameter name.
type EvalError struct {
	Line    int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Engine wraps the zygomys interpreter. It is safe for concurrent
// use; each call to Evaluate runs in a fresh sandbox so the same
// script always produces the same parameters.
type Engine struct {
	mu         sync.Mutex
	generation uint64
}

func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate runs a parameter script against the base parameters and
// returns the adjusted set.
//
// Return semantics:
//   - success: adjusted params, nil errors, nil error
//   - script fault: zero params, eval errors, nil error
//   - fatal fault (timeout, panic): zero params, nil, error
func (e *Engine) Evaluate(source string, base config.Params) (config.Params, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		p, evalErrs, err := evaluate(source, base)
		ch <- evalResult{params: p, errors: evalErrs, err: err}
	}()

	return waitWithTimeout(ch, gen, &e.mu, &e.generation)
}

func evaluate(source string, base config.Params) (config.Params, []EvalError, error) {
	// An empty script is a valid program that changes nothing.
	if strings.TrimSpace(source) == "" {
		return base, nil, nil
	}

	// Sandbox mode keeps user code away from the filesystem and
	// syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	params := base
	registerBuiltins(env, &params)

	if err := env.LoadString(rewriteSource(source)); err != nil {
		return config.Params{}, parseZygomysError(err), nil
	}
	if _, err := env.Run(); err != nil {
		return config.Params{}, parseZygomysError(err), nil
	}

	return params, nil, nil
}

// zygomys formats parse errors as "Error on line N: <details>", eval
// errors sometimes as "line N: <details>".
var (
	linePattern      = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)
	linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)
)

// parseZygomysError converts a zygomys error into EvalError values,
// extracting a line number when the message carries one.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()

	for _, pat := range []*regexp.Regexp{linePattern, linePatternShort} {
		if m := pat.FindStringSubmatch(msg); m != nil {
			line, _ := strconv.Atoi(m[1])
			return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
		}
	}
	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
