// Package dataset reads test-vector files for the nnet model variants.
//
// The file format is line-oriented: each vector is
//
//	input_csv | param_csv | expected_output_csv
//
// with " | " as the field delimiter. Blank lines and lines starting with
// '#' are skipped. Malformed lines are logged and skipped rather than
// failing the whole file, matching the tooling this format comes from.
package dataset

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/YuminosukeSato/nnet/pkg/errors"
	"github.com/YuminosukeSato/nnet/pkg/log"
)

const fieldDelimiter = " | "

// Case is one parsed test vector: an input, the flat parameter vector to
// load before running it, and the expected forward output.
type Case struct {
	Input    []float64
	Params   []float64
	Expected []float64
	Line     int
}

// Load reads all test vectors from the file at path.
func Load(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: open %s", path)
	}
	defer f.Close()

	cases, err := LoadReader(f, path)
	if err != nil {
		return nil, err
	}

	slog.Debug("loaded test vectors",
		log.ComponentKey, "dataset",
		log.PathKey, path,
		log.CasesKey, len(cases),
	)
	return cases, nil
}

// LoadReader reads test vectors from r. The name is used only for logging
// and error context. Malformed lines are skipped with a warning; an empty
// result is not an error.
func LoadReader(r io.Reader, name string) ([]Case, error) {
	var cases []Case

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		c, err := parseLine(line, lineNo)
		if err != nil {
			slog.Warn("skipping malformed test vector",
				log.ComponentKey, "dataset",
				log.PathKey, name,
				log.LineKey, lineNo,
				log.ErrAttr(err),
			)
			continue
		}
		cases = append(cases, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "dataset: read %s", name)
	}

	return cases, nil
}

func parseLine(line string, lineNo int) (Case, error) {
	fields := strings.Split(line, fieldDelimiter)
	if len(fields) != 3 {
		return Case{}, errors.NewValueError("dataset.parseLine",
			"expected 3 pipe-delimited fields, got "+strconv.Itoa(len(fields)))
	}

	c := Case{Line: lineNo}
	var err error
	if c.Input, err = parseFloats(fields[0]); err != nil {
		return Case{}, errors.Wrap(err, "input field")
	}
	if c.Params, err = parseFloats(fields[1]); err != nil {
		return Case{}, errors.Wrap(err, "param field")
	}
	if c.Expected, err = parseFloats(fields[2]); err != nil {
		return Case{}, errors.Wrap(err, "expected field")
	}
	return c, nil
}

func parseFloats(csv string) ([]float64, error) {
	parts := strings.Split(csv, ",")
	values := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errors.NewValueError("dataset.parseFloats", "malformed float "+strconv.Quote(p))
		}
		values = append(values, v)
	}
	return values, nil
}
