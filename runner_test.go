package aoc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logRecorder struct {
	lines []string
}

func (l *logRecorder) logf(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func (l *logRecorder) contains(s string) bool {
	for _, line := range l.lines {
		if strings.Contains(line, s) {
			return true
		}
	}
	return false
}

func sumLines(p *Puzzle) any {
	p.Debugf("%d lines", len(p.Lines()))
	return Sum(Ints(p.Lines()...)...)
}

func testRunner(t *testing.T, mut func(*Config)) (*Runner, *logRecorder) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "demo"), 0700))
	for day, body := range map[int]string{1: "3\n4\n", 3: "x\n"} {
		name := filepath.Join(dir, "demo", fmt.Sprintf("day%02d.txt", day))
		require.NoError(t, os.WriteFile(name, []byte(body), 0644))
	}

	var reg Registry
	reg.Register(1, "sum", Part{Fn: sumLines}, Part{})
	reg.Register(1, "slow", Part{Fn: sumLines, LongRunning: true}, Part{Fn: func(p *Puzzle) any { return len(p.Input()) }})
	reg.Register(2, "nodata", Part{Fn: sumLines}, Part{Fn: sumLines})
	reg.Register(3, "broken",
		Part{Fn: func(*Puzzle) any { return nil }},
		Part{Fn: func(p *Puzzle) any { return Int(p.Lines()[0]) }},
	)

	cfg := &Config{Year: 2024, InputDir: dir, Demo: true}
	if mut != nil {
		mut(cfg)
	}
	rec := &logRecorder{}
	return NewRunner(cfg, &reg, rec.logf), rec
}

func values(r Result) [2]string {
	return [2]string{r.First.String(), r.Second.String()}
}

func TestRunnerRun(t *testing.T) {
	r, rec := testRunner(t, nil)
	res, err := r.Run(1, 2, 3, 4)
	require.NoError(t, err)
	require.Len(t, res, 5)

	assert.Equal(t, "sum", res[0].Name)
	assert.Equal(t, [2]string{"7", NoSolution}, values(res[0]))
	assert.Equal(t, "slow", res[1].Name)
	assert.Equal(t, [2]string{"7", "4"}, values(res[1]))
	assert.Equal(t, [2]string{NoData, NoData}, values(res[2]))

	assert.Equal(t, 3, res[3].Day)
	assert.Equal(t, NoResult, res[3].First.Value)
	assert.NoError(t, res[3].First.Err)
	assert.Error(t, res[3].Second.Err)
	assert.Equal(t, "ERROR", res[3].Second.String())

	assert.Equal(t, Result{Day: 4, Name: NoSolution, First: Answer{Value: NoSolution}, Second: Answer{Value: NoSolution}}, res[4])

	assert.True(t, rec.contains("day 01 sum part 1: 7"))
	assert.False(t, rec.contains("2 lines"), "debug output without debug mode")
}

func TestRunnerDebug(t *testing.T) {
	r, rec := testRunner(t, func(c *Config) { c.Debug = true })
	_, err := r.Run(1)
	require.NoError(t, err)
	assert.True(t, rec.contains("found 4 implementations"))
	assert.True(t, rec.contains("day 01 sum: 2 lines"))
}

func TestRunnerSkips(t *testing.T) {
	r, _ := testRunner(t, func(c *Config) { c.Quick = true })
	res, err := r.Run(1)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, [2]string{"7", NoSolution}, values(res[0]))
	assert.Equal(t, [2]string{Skipped, "4"}, values(res[1]))

	r, _ = testRunner(t, func(c *Config) { c.Part = "2" })
	res, err = r.Run(1)
	require.NoError(t, err)
	assert.Equal(t, [2]string{Skipped, NoSolution}, values(res[0]))
	assert.Equal(t, [2]string{Skipped, "4"}, values(res[1]))
}

func TestRunnerDayOutOfRange(t *testing.T) {
	r, _ := testRunner(t, nil)
	for _, day := range []int{0, 26} {
		_, err := r.Run(day)
		assert.ErrorIs(t, err, ErrDayOutOfRange, "day %d", day)
	}

	r, _ = testRunner(t, func(c *Config) { c.Year = 2025 })
	_, err := r.Run(13)
	assert.ErrorIs(t, err, ErrDayOutOfRange)
}

func TestRunnerRunAll(t *testing.T) {
	r, _ := testRunner(t, nil)
	res, err := r.RunAll()
	require.NoError(t, err)
	assert.Len(t, res, 4)

	res, err = r.RunLast()
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, 3, res[0].Day)

	r, _ = testRunner(t, func(c *Config) { c.PrintAfterLast = true })
	res, err = r.RunAll()
	require.NoError(t, err)
	assert.Len(t, res, 26)
	assert.Equal(t, 25, res[len(res)-1].Day)
	assert.Equal(t, NoSolution, res[len(res)-1].Name)
}

func TestRunnerEmptyRegistry(t *testing.T) {
	r := NewRunner(DefaultConfig(), &Registry{}, nil)
	res, err := r.RunAll()
	assert.NoError(t, err)
	assert.Empty(t, res)

	res, err = r.RunLast()
	assert.NoError(t, err)
	assert.Empty(t, res)
}

func TestRunnerInputPerSolution(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "real"), 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "real", "day05.txt"), []byte("abc\n"), 0644))

	var reg Registry
	reg.Register(5, "scribble", Part{Fn: func(p *Puzzle) any {
		in := p.Input()
		in[0] = 'z'
		return p.Lines()[0]
	}}, Part{Fn: func(p *Puzzle) any { return p.Lines()[0] }})
	reg.Register(5, "reader", Part{Fn: func(p *Puzzle) any { return p.Lines()[0] }}, Part{})

	r := NewRunner(&Config{Year: 2024, InputDir: dir}, &reg, nil)
	res, err := r.Run(5)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, [2]string{"zbc", "zbc"}, values(res[0]))
	assert.Equal(t, "abc", res[1].First.String())
}
