package aoc

import (
	"fmt"
	"strconv"
	"strings"
)

// LookAndSay returns the next term of the look-and-say sequence after s.
func LookAndSay(s string) string {
	if s == "" {
		return ""
	}
	var sb strings.Builder
	run, last := 0, s[0]
	for i := 0; i < len(s); i++ {
		if s[i] != last {
			sb.WriteString(strconv.Itoa(run))
			sb.WriteByte(last)
			run, last = 0, s[i]
		}
		run++
	}
	sb.WriteString(strconv.Itoa(run))
	sb.WriteByte(last)
	return sb.String()
}

// LookAndSayN applies LookAndSay n times to seed.
func LookAndSayN(seed string, n int) string {
	for i := 0; i < n; i++ {
		seed = LookAndSay(seed)
	}
	return seed
}

// Pair is two consecutive values.
type Pair[T any] struct {
	From, To T
}

// PairWithNext returns every element of s paired with the one after it.
func PairWithNext[T any](s []T) []Pair[T] {
	if len(s) < 2 {
		return nil
	}
	out := make([]Pair[T], 0, len(s)-1)
	for i := 1; i < len(s); i++ {
		out = append(out, Pair[T]{s[i-1], s[i]})
	}
	return out
}

// Window returns every run of size consecutive elements of s.
func Window[T any](s []T, size int) [][]T {
	if size <= 0 || len(s) < size {
		return nil
	}
	out := make([][]T, 0, len(s)-size+1)
	for i := 0; i+size <= len(s); i++ {
		out = append(out, s[i:i+size:i+size])
	}
	return out
}

// SplitPair splits s around the first sep and maps both halves. Anything
// after a second sep is dropped. It returns an error if sep does not occur.
func SplitPair[A, B any](s, sep string, fa func(string) A, fb func(string) B) (A, B, error) {
	a, b, ok := strings.Cut(s, sep)
	if !ok {
		var za A
		var zb B
		return za, zb, fmt.Errorf("%q has no %q separator", s, sep)
	}
	b, _, _ = strings.Cut(b, sep)
	return fa(a), fb(b), nil
}

// Ints returns the int values of the strings.
func Ints(s ...string) []int {
	var out []int
	for _, v := range s {
		out = append(out, Int(v))
	}
	return out
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Digits returns the individual digits of the string.
func Digits(line string) []int {
	var in []int
	for _, c := range line {
		in = append(in, Digit(c))
	}
	return in
}

// Digit returns the digit value of the rune.
func Digit(r rune) int {
	if r < '0' || r > '9' {
		panic(fmt.Sprintf("not a digit: %q", r))
	}
	return int(r - '0')
}
