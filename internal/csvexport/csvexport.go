// Package csvexport writes sample tables for offline inspection and plotting.
package csvexport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
)

// ErrInvalidSweep is returned by Sweep for a non-positive or non-finite range.
var ErrInvalidSweep = errors.New("csvexport: invalid sweep range")

// MaxSweepPoints bounds the number of rows Sweep will generate.
const MaxSweepPoints = 1 << 20

// Column is a named series written next to the shared input column.
type Column struct {
	Name   string
	Values []float64
}

// WritePairs writes a before/after table to path with the header
// "sample,input,output". Rows stop at the shorter of the two inputs.
func WritePairs(path string, input, output []float64) error {
	return writeFile(path, func(w io.Writer) error {
		return EncodePairs(w, input, output)
	})
}

// EncodePairs writes the WritePairs table to w.
func EncodePairs(w io.Writer, input, output []float64) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"sample", "input", "output"}); err != nil {
		return err
	}

	n := min(len(input), len(output))
	row := make([]string, 3)

	for i := range n {
		row[0] = strconv.Itoa(i)
		row[1] = strconv.FormatFloat(input[i], 'g', 6, 64)
		row[2] = strconv.FormatFloat(output[i], 'g', 6, 64)

		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

// WriteCurves writes a transfer-curve table to path: an "Input" column
// followed by one column per entry in columns, in order. Values use six
// fixed decimals. Every column must have len(input) values.
func WriteCurves(path string, input []float64, columns []Column) error {
	for _, c := range columns {
		if len(c.Values) != len(input) {
			return fmt.Errorf("column %q has %d values, want %d", c.Name, len(c.Values), len(input))
		}
	}

	return writeFile(path, func(w io.Writer) error {
		cw := csv.NewWriter(w)

		header := make([]string, 0, len(columns)+1)
		header = append(header, "Input")

		for _, c := range columns {
			header = append(header, c.Name)
		}

		if err := cw.Write(header); err != nil {
			return err
		}

		row := make([]string, len(header))
		for i, x := range input {
			row[0] = strconv.FormatFloat(x, 'f', 6, 64)
			for j, c := range columns {
				row[j+1] = strconv.FormatFloat(c.Values[i], 'f', 6, 64)
			}

			if err := cw.Write(row); err != nil {
				return err
			}
		}

		cw.Flush()

		return cw.Error()
	})
}

// Sweep returns from, from+step, ... up to and including to (within half
// a step). Values are computed by index so rounding does not accumulate.
func Sweep(from, to, step float64) ([]float64, error) {
	if !(step > 0) || !(to >= from) || math.IsInf(from, 0) || math.IsInf(to, 0) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("%w: from=%g to=%g step=%g", ErrInvalidSweep, from, to, step)
	}

	count := math.Floor((to-from)/step+0.5) + 1
	if !(count <= MaxSweepPoints) {
		return nil, fmt.Errorf("%w: %g points exceeds %d", ErrInvalidSweep, count, MaxSweepPoints)
	}

	out := make([]float64, int(count))

	for i := range out {
		out[i] = from + float64(i)*step
	}

	return out, nil
}

func writeFile(path string, encode func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create CSV %s: %w", path, err)
	}

	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("close CSV %s: %w", path, closeErr)
		}
	}()

	if err := encode(f); err != nil {
		return fmt.Errorf("write CSV %s: %w", path, err)
	}

	return nil
}
