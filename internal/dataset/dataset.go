// Package dataset loads training samples for the perceptron trainer.
//
// Samples are stored as CSV, one sample per line, inputs first and targets
// last:
//
//	# x1,x2,target
//	0,0,0
//	0,1,1
//
// Lines starting with '#' are ignored.
package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/born-ml/perceptron/internal/mlp"
)

// Errors returned by the loaders.
var (
	ErrEmpty     = errors.New("dataset: no samples")
	ErrBadRecord = errors.New("dataset: malformed record")
)

// Load reads samples with the given input and target widths from a CSV file.
func Load(path string, inputs, outputs int) ([]mlp.Sample, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "dataset: open")
	}
	defer file.Close()

	samples, err := Read(file, inputs, outputs)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: %s", path)
	}
	return samples, nil
}

// Read parses samples from CSV. Every record must have exactly
// inputs+outputs numeric fields.
func Read(r io.Reader, inputs, outputs int) ([]mlp.Sample, error) {
	if inputs <= 0 || outputs <= 0 {
		return nil, errors.Wrapf(ErrBadRecord, "widths must be positive, got inputs=%d outputs=%d", inputs, outputs)
	}

	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = inputs + outputs
	reader.TrimLeadingSpace = true

	var samples []mlp.Sample
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(ErrBadRecord, err.Error())
		}

		values, err := parseRecord(record)
		if err != nil {
			line, _ := reader.FieldPos(0)
			return nil, errors.Wrapf(err, "line %d", line)
		}
		samples = append(samples, mlp.Sample{
			Input:    values[:inputs:inputs],
			Expected: values[inputs:],
		})
	}

	if len(samples) == 0 {
		return nil, ErrEmpty
	}
	return samples, nil
}

func parseRecord(record []string) ([]float64, error) {
	values := make([]float64, len(record))
	for i, field := range record {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, errors.Wrapf(ErrBadRecord, "field %d: %q", i+1, field)
		}
		values[i] = v
	}
	return values, nil
}

// Inputs returns the input vectors of samples, sharing their storage.
func Inputs(samples []mlp.Sample) [][]float64 {
	inputs := make([][]float64, len(samples))
	for i, s := range samples {
		inputs[i] = s.Input
	}
	return inputs
}

// XOR returns the four samples of the two-input exclusive-or.
func XOR() []mlp.Sample {
	return truthTable(func(a, b bool) bool { return a != b })
}

// AND returns the four samples of the two-input conjunction.
func AND() []mlp.Sample {
	return truthTable(func(a, b bool) bool { return a && b })
}

// Builtin returns the built-in dataset with the given name.
func Builtin(name string) ([]mlp.Sample, bool) {
	switch strings.ToLower(name) {
	case "xor":
		return XOR(), true
	case "and":
		return AND(), true
	default:
		return nil, false
	}
}

func truthTable(fn func(a, b bool) bool) []mlp.Sample {
	samples := make([]mlp.Sample, 0, 4)
	for _, a := range []bool{false, true} {
		for _, b := range []bool{false, true} {
			samples = append(samples, mlp.Sample{
				Input:    []float64{bit(a), bit(b)},
				Expected: []float64{bit(fn(a, b))},
			})
		}
	}
	return samples
}

func bit(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
