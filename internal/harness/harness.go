// Package harness runs named test cases in sequence and stops at the first
// failure.
//
// Cases are plain functions: a nil return is a pass, any error is a failure,
// and a panic escaping the case body is an unexpected fault. A failure or a
// fault aborts the run; cases after it are reported as skipped and never
// execute.
package harness

import (
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"time"
)

// Outcome is the recorded result of a single case.
type Outcome string

const (
	Pass Outcome = "pass"
	Fail Outcome = "fail"
	Skip Outcome = "skip" // not reached because the run was aborted
)

// Case is a registered test case.
type Case struct {
	Name   string
	Action func() error
}

// Result is the outcome of one case in one run.
type Result struct {
	Name     string
	Outcome  Outcome
	Err      error
	Fault    bool
	Duration time.Duration
}

// Report is the ordered set of results produced by Run.
type Report struct {
	Results  []Result
	Duration time.Duration
}

// Passed reports whether every case passed. An empty report passes.
func (r Report) Passed() bool {
	for _, res := range r.Results {
		if res.Outcome != Pass {
			return false
		}
	}
	return true
}

// Failed returns the result that aborted the run, or nil.
func (r Report) Failed() *Result {
	for i := range r.Results {
		if r.Results[i].Outcome == Fail {
			return &r.Results[i]
		}
	}
	return nil
}

// Counts returns the number of passed, failed, and skipped cases.
func (r Report) Counts() (passed, failed, skipped int) {
	for _, res := range r.Results {
		switch res.Outcome {
		case Pass:
			passed++
		case Fail:
			failed++
		case Skip:
			skipped++
		}
	}
	return passed, failed, skipped
}

// ExitCode returns 0 when every case passed and 1 otherwise.
func (r Report) ExitCode() int {
	if r.Passed() {
		return 0
	}
	return 1
}

// Option configures a Runner.
type Option func(*Runner)

// WithOutput sets the writer receiving one status line per executed case.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) { r.out = w }
}

// WithClock replaces time.Now for duration measurement.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

// Runner holds registered cases. It is not safe for concurrent use.
type Runner struct {
	cases []Case
	out   io.Writer
	now   func() time.Time
}

// New creates a Runner with no registered cases.
func New(opts ...Option) *Runner {
	r := &Runner{out: io.Discard, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register appends a case. Cases run in registration order.
func (r *Runner) Register(name string, action func() error) {
	r.cases = append(r.cases, Case{Name: name, Action: action})
}

// Run executes every registered case once, in order, stopping at the first
// failure. Run keeps no state between calls.
func (r *Runner) Run() Report {
	start := r.now()
	report := Report{Results: make([]Result, 0, len(r.cases))}

	aborted := false
	for _, c := range r.cases {
		if aborted {
			report.Results = append(report.Results, Result{Name: c.Name, Outcome: Skip})
			continue
		}
		res := r.execute(c)
		report.Results = append(report.Results, res)
		if res.Outcome == Fail {
			aborted = true
		}
	}

	report.Duration = r.now().Sub(start)
	return report
}

// RegisterAndRun registers a case and executes it immediately, returning nil
// on pass or the error that failed it.
func (r *Runner) RegisterAndRun(name string, action func() error) error {
	r.Register(name, action)
	res := r.execute(r.cases[len(r.cases)-1])
	if res.Outcome == Pass {
		return nil
	}
	return fmt.Errorf("%s: %w", name, res.Err)
}

func (r *Runner) execute(c Case) Result {
	start := r.now()
	err := invoke(c.Action)
	res := Result{
		Name:     c.Name,
		Outcome:  Pass,
		Err:      err,
		Duration: r.now().Sub(start),
	}
	if err != nil {
		res.Outcome = Fail
		res.Fault = IsFault(err)
	}

	status := "PASS"
	if res.Outcome == Fail {
		status = "FAIL"
	}
	fmt.Fprintf(r.out, "Testing %s\t(%s)\n", c.Name, status)
	return res
}

// invoke runs action, converting an escaping panic into a *FaultError.
func invoke(action func() error) (err error) {
	if action == nil {
		return &FaultError{Value: errors.New("missing test action")}
	}
	defer func() {
		if v := recover(); v != nil {
			err = &FaultError{Value: v, Stack: debug.Stack()}
		}
	}()
	return action()
}
