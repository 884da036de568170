package aoc

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"tailscale.com/types/logger"
)

// Placeholder answers reported instead of a result.
const (
	NoSolution = "NO IMPL"
	NoData     = "NO DATA"
	NoResult   = "NO RESULT"
	Skipped    = "SKIPPED"
)

// ErrDayOutOfRange is returned for days outside 1..Config.MaxDays.
var ErrDayOutOfRange = errors.New("day out of range")

// Answer is the outcome of one puzzle part.
type Answer struct {
	Value string
	Took  time.Duration
	Err   error // set if the part panicked
}

func (a Answer) String() string {
	if a.Err != nil {
		return "ERROR"
	}
	return a.Value
}

// Result is the outcome of one solution of a day.
type Result struct {
	Day    int
	Name   string
	First  Answer
	Second Answer
}

// Runner executes registered solutions against their inputs.
type Runner struct {
	cfg    *Config
	reg    *Registry
	loader *InputLoader
	logf   logger.Logf
}

// NewRunner returns a Runner. logf receives one line per part run and may be
// nil.
func NewRunner(cfg *Config, reg *Registry, logf logger.Logf) *Runner {
	if logf == nil {
		logf = logger.Discard
	}
	return &Runner{
		cfg:    cfg,
		reg:    reg,
		loader: NewInputLoader(cfg, logger.WithPrefix(logf, "input: ")),
		logf:   logf,
	}
}

func (r *Runner) debugf(format string, args ...any) {
	if r.cfg.Debug {
		r.logf(format, args...)
	}
}

// Run runs the given days in order. A day without solutions yields a single
// Result with NoSolution answers.
func (r *Runner) Run(days ...int) ([]Result, error) {
	r.debugf("demo=%v debug=%v part=%q quick=%v days=%v", r.cfg.Demo, r.cfg.Debug, r.cfg.Part, r.cfg.Quick, days)
	r.debugf("found %d implementations", r.reg.Len())
	var out []Result
	for _, d := range days {
		if d < 1 || d > r.cfg.MaxDays() {
			return out, fmt.Errorf("day %d: %w (1..%d)", d, ErrDayOutOfRange, r.cfg.MaxDays())
		}
		res, err := r.runDay(d)
		if err != nil {
			return out, err
		}
		out = append(out, res...)
	}
	return out, nil
}

// RunLast runs the highest implemented day.
func (r *Runner) RunLast() ([]Result, error) {
	last, ok := r.reg.Last()
	if !ok {
		return nil, nil
	}
	return r.Run(last)
}

// RunAll runs every day up to the last implemented one, or up to
// Config.MaxDays if PrintAfterLast is set.
func (r *Runner) RunAll() ([]Result, error) {
	last := r.cfg.MaxDays()
	if !r.cfg.PrintAfterLast {
		var ok bool
		if last, ok = r.reg.Last(); !ok {
			return nil, nil
		}
	}
	return r.Run(Range(1, min(last, r.cfg.MaxDays()))...)
}

func (r *Runner) runDay(day int) ([]Result, error) {
	sols := r.reg.Day(day)
	if len(sols) == 0 {
		none := Answer{Value: NoSolution}
		return []Result{{Day: day, Name: NoSolution, First: none, Second: none}}, nil
	}

	input, err := r.loader.Load(day)
	if err != nil && !errors.Is(err, ErrNoInput) {
		return nil, err
	}
	hasInput := err == nil

	var out []Result
	for _, s := range sols {
		p := &Puzzle{
			Day:   day,
			Demo:  r.cfg.Demo,
			input: bytes.Clone(input),
			debug: r.cfg.Debug,
			logf:  logger.WithPrefix(r.logf, fmt.Sprintf("day %02d %s: ", day, s.Name)),
		}
		res := Result{Day: day, Name: s.Name}
		for i, part := range []Part{s.First, s.Second} {
			a := r.runPart(p, part, i+1, hasInput)
			r.logf("day %02d %s part %d: %v (took %v)", day, s.Name, i+1, a, a.Took.Round(time.Microsecond))
			if i == 0 {
				res.First = a
			} else {
				res.Second = a
			}
		}
		out = append(out, res)
	}
	return out, nil
}

func (r *Runner) runPart(p *Puzzle, part Part, n int, hasInput bool) (a Answer) {
	switch {
	case !r.cfg.runsPart(n), r.cfg.Quick && part.LongRunning:
		return Answer{Value: Skipped}
	case part.Fn == nil:
		return Answer{Value: NoSolution}
	case !hasInput:
		return Answer{Value: NoData}
	}

	t0 := time.Now()
	defer func() {
		a.Took = time.Since(t0)
		if e := recover(); e != nil {
			a.Err = fmt.Errorf("day %d part %d panicked: %v", p.Day, n, e)
		}
	}()
	v := part.Fn(p)
	if v == nil {
		return Answer{Value: NoResult}
	}
	return Answer{Value: fmt.Sprint(v)}
}
