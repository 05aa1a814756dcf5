// Package pilot flies the jet from a JavaScript decide function, for headless
// soak runs and demos.
package pilot

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dop251/goja"
)

// ErrNoDecide is returned when a script does not define a decide function
var ErrNoDecide = errors.New("script must define a 'decide' function")

// Runner holds one goja runtime with the pilot script loaded
type Runner struct {
	mu     sync.Mutex
	vm     *goja.Runtime
	decide goja.Callable
}

// NewRunner compiles the script and looks up its decide function
func NewRunner(name, code string) (*Runner, error) {
	program, err := goja.Compile(name, code, true)
	if err != nil {
		return nil, fmt.Errorf("script parse error: %w", err)
	}

	vm := goja.New()
	if _, err := vm.RunProgram(program); err != nil {
		return nil, fmt.Errorf("script execution failed: %w", err)
	}

	v := vm.Get("decide")
	if v == nil || goja.IsUndefined(v) {
		return nil, ErrNoDecide
	}
	decide, ok := goja.AssertFunction(v)
	if !ok {
		return nil, fmt.Errorf("'decide' must be a function: %w", ErrNoDecide)
	}

	return &Runner{vm: vm, decide: decide}, nil
}

// Decide calls the script with a game snapshot and parses its answer
func (r *Runner) Decide(ctx Context) (Decision, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ctxJSON, err := json.Marshal(ctx)
	if err != nil {
		return Decision{}, fmt.Errorf("failed to serialize context: %w", err)
	}

	ctxObj, err := r.vm.RunString(fmt.Sprintf("(%s)", ctxJSON))
	if err != nil {
		return Decision{}, fmt.Errorf("failed to parse context: %w", err)
	}

	result, err := r.decide(goja.Undefined(), ctxObj)
	if err != nil {
		return Decision{}, fmt.Errorf("decide function failed: %w", err)
	}
	if result == nil || goja.IsUndefined(result) || goja.IsNull(result) {
		return Decision{}, nil
	}

	resultJSON, err := json.Marshal(result.Export())
	if err != nil {
		return Decision{}, fmt.Errorf("failed to serialize result: %w", err)
	}

	var d Decision
	if err := json.Unmarshal(resultJSON, &d); err != nil {
		return Decision{}, fmt.Errorf("failed to parse script result: %w (result: %s)", err, resultJSON)
	}
	return d, nil
}
