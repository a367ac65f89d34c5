package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// parseFloats converts the fields of one record, naming the offending
// field on failure.
func parseFloats(fields []string, names []string) ([]float64, error) {
	if len(fields) != len(names) {
		return nil, errors.Errorf("want %d values (%s), got %d",
			len(names), strings.Join(names, " "), len(fields))
	}
	vals := make([]float64, len(fields))
	for i, s := range fields {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %s", names[i])
		}
		vals[i] = v
	}
	return vals, nil
}

// eachRecord calls fn with the parsed values of every non-blank line of r.
// Lines starting with # are comments.
func eachRecord(r io.Reader, names []string, fn func(vals []float64) error) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		vals, err := parseFloats(strings.Fields(text), names)
		if err != nil {
			return errors.Wrapf(err, "line %d", line)
		}
		if err := fn(vals); err != nil {
			return errors.Wrapf(err, "line %d", line)
		}
	}
	return errors.Wrap(sc.Err(), "reading input")
}

// runRecords applies fn to args when given, otherwise to each record read
// from in.
func runRecords(in io.Reader, args []string, names []string, fn func(vals []float64) error) error {
	if len(args) == 0 {
		return eachRecord(in, names, fn)
	}
	vals, err := parseFloats(args, names)
	if err != nil {
		return err
	}
	return fn(vals)
}
