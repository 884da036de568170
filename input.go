package aoc

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"tailscale.com/types/logger"
)

// ErrNoInput is returned when a day has no input file and it cannot be
// fetched.
var ErrNoInput = errors.New("no input")

// InputLoader finds the input file of a day: <InputDir>/demo/dayNN.txt in
// demo mode and <InputDir>/real/dayNN.txt otherwise.
type InputLoader struct {
	cfg     *Config
	logf    logger.Logf
	client  *http.Client
	baseURL string

	session func() (string, error)
}

// NewInputLoader returns a loader for cfg. logf may be nil.
func NewInputLoader(cfg *Config, logf logger.Logf) *InputLoader {
	if logf == nil {
		logf = logger.Discard
	}
	l := &InputLoader{
		cfg:     cfg,
		logf:    logf,
		client:  http.DefaultClient,
		baseURL: "https://adventofcode.com",
	}
	l.session = sync.OnceValues(func() (string, error) {
		b, err := os.ReadFile(cfg.SessionFile)
		if err != nil {
			return "", fmt.Errorf("reading session: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	})
	return l
}

// Path returns the file the input of day is read from.
func (l *InputLoader) Path(day int) string {
	mode := "real"
	if l.cfg.Demo {
		mode = "demo"
	}
	return filepath.Join(l.cfg.InputDir, mode, fmt.Sprintf("day%02d.txt", day))
}

// Load returns the input of day. A missing real input is downloaded and
// cached if a session file is configured; otherwise the error wraps
// ErrNoInput.
func (l *InputLoader) Load(day int) ([]byte, error) {
	name := l.Path(day)
	b, err := os.ReadFile(name)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if l.cfg.Demo || l.cfg.SessionFile == "" {
		return nil, fmt.Errorf("day %d: %w", day, ErrNoInput)
	}
	url := fmt.Sprintf("%s/%d/day/%d/input", l.baseURL, l.cfg.Year, day)
	l.logf("fetching %s", url)
	body, err := l.fetch(url)
	if err != nil {
		return nil, fmt.Errorf("day %d: %w: %w", day, ErrNoInput, err)
	}
	if err := os.MkdirAll(filepath.Dir(name), 0700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(name, body, 0644); err != nil {
		return nil, err
	}
	return body, nil
}

func (l *InputLoader) fetch(url string) ([]byte, error) {
	session, err := l.session()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: session})
	res, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status fetching %s: %v", url, res.Status)
	}
	return io.ReadAll(res.Body)
}
