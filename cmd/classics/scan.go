package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// errInput marks malformed driver-level input (as opposed to a solver
// rejecting a semantically invalid case).
var errInput = errors.New("malformed input")

// caseScanner reads the judges' line-oriented format. The buffer cap
// accommodates the beads problem, whose sequence lines reach 10 MB.
type caseScanner struct {
	s *bufio.Scanner
}

func newCaseScanner(r io.Reader) *caseScanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &caseScanner{s: s}
}

// Line returns the next input line without the trailing newline or CR.
func (c *caseScanner) Line() (string, error) {
	if !c.s.Scan() {
		if err := c.s.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("%w: unexpected end of input", errInput)
	}
	return strings.TrimSuffix(c.s.Text(), "\r"), nil
}

// Int reads a line holding a single integer.
func (c *caseScanner) Int() (int, error) {
	line, err := c.Line()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", errInput, line)
	}
	return v, nil
}

// Ints reads a line of whitespace-separated integers.
func (c *caseScanner) Ints() ([]int, error) {
	line, err := c.Line()
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(line)
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", errInput, f)
		}
		out[i] = v
	}
	return out, nil
}

// Int64s reads a line of whitespace-separated 64-bit integers.
func (c *caseScanner) Int64s() ([]int64, error) {
	line, err := c.Line()
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(line)
	out := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a 64-bit integer", errInput, f)
		}
		out[i] = v
	}
	return out, nil
}

// fixedInts reads a line that must hold exactly n integers.
func (c *caseScanner) fixedInts(n int) ([]int, error) {
	vs, err := c.Ints()
	if err != nil {
		return nil, err
	}
	if len(vs) != n {
		return nil, fmt.Errorf("%w: expected %d integers, got %d", errInput, n, len(vs))
	}
	return vs, nil
}
