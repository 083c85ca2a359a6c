// Package config holds the trainer configuration and its YAML encoding.
//
// Example file:
//
//	inputs: 2
//	outputs: 1
//	epochs: 5000
//	learning_rate: 0.1
//	policy: rprop
//	seed: 42
//	dataset: xor
//	rprop:
//	  step_max: 10
package config

import (
	"bytes"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/perceptron/internal/mlp"
	"github.com/born-ml/perceptron/internal/optim"
)

// ErrInvalid is returned by Validate for an unusable configuration.
var ErrInvalid = errors.New("config: invalid")

// Config configures one training run.
type Config struct {
	Inputs       int     `yaml:"inputs"`
	Outputs      int     `yaml:"outputs"`
	Epochs       int     `yaml:"epochs"`
	LearningRate float64 `yaml:"learning_rate"`
	Policy       string  `yaml:"policy"`
	Init         string  `yaml:"init"`
	Seed         uint64  `yaml:"seed"`
	Threshold    float64 `yaml:"threshold"`
	Dataset      string  `yaml:"dataset"` // CSV path or a built-in name (xor, and)

	Rprop RpropConfig `yaml:"rprop"`
}

// RpropConfig mirrors optim.RpropConfig.
type RpropConfig struct {
	EtaPlus     float64 `yaml:"eta_plus"`
	EtaMinus    float64 `yaml:"eta_minus"`
	StepMin     float64 `yaml:"step_min"`
	StepMax     float64 `yaml:"step_max"`
	InitialStep float64 `yaml:"initial_step"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	rprop := optim.DefaultRpropConfig()
	return Config{
		Inputs:       2,
		Outputs:      1,
		Epochs:       10000,
		LearningRate: 0.1,
		Policy:       mlp.DeltaRule.String(),
		Init:         mlp.InitScaledNormal.String(),
		Seed:         1,
		Threshold:    mlp.DefaultThreshold,
		Dataset:      "xor",
		Rprop: RpropConfig{
			EtaPlus:     rprop.EtaPlus,
			EtaMinus:    rprop.EtaMinus,
			StepMin:     rprop.StepMin,
			StepMax:     rprop.StepMax,
			InitialStep: rprop.InitialStep,
		},
	}
}

// Load reads a YAML file over Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "config: read")
	}
	return Parse(data)
}

// Parse decodes YAML over Default and validates the result. Unknown keys
// are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "config: decode")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first problem found in c.
func (c Config) Validate() error {
	switch {
	case c.Inputs <= 0 || c.Outputs <= 0:
		return errors.Wrapf(ErrInvalid, "inputs=%d outputs=%d", c.Inputs, c.Outputs)
	case c.Epochs <= 0:
		return errors.Wrapf(ErrInvalid, "epochs=%d", c.Epochs)
	case !positive(c.LearningRate):
		return errors.Wrapf(ErrInvalid, "learning_rate=%v", c.LearningRate)
	case !positive(c.Threshold):
		return errors.Wrapf(ErrInvalid, "threshold=%v", c.Threshold)
	}

	if _, err := mlp.ParsePolicy(c.Policy); err != nil {
		return errors.Wrap(ErrInvalid, err.Error())
	}
	if _, err := mlp.ParseInitializer(c.Init); err != nil {
		return errors.Wrap(ErrInvalid, err.Error())
	}

	r := c.Rprop
	switch {
	case !positive(r.StepMin) || !positive(r.StepMax) || r.StepMin > r.StepMax:
		return errors.Wrapf(ErrInvalid, "rprop step bounds [%v, %v]", r.StepMin, r.StepMax)
	case r.EtaPlus <= 1:
		return errors.Wrapf(ErrInvalid, "rprop eta_plus=%v must exceed 1", r.EtaPlus)
	case r.EtaMinus <= 0 || r.EtaMinus >= 1:
		return errors.Wrapf(ErrInvalid, "rprop eta_minus=%v must be in (0, 1)", r.EtaMinus)
	case r.InitialStep < r.StepMin || r.InitialStep > r.StepMax:
		return errors.Wrapf(ErrInvalid, "rprop initial_step=%v outside [%v, %v]", r.InitialStep, r.StepMin, r.StepMax)
	}
	return nil
}

// NetworkOptions converts c into network options.
//
// c must be valid.
func (c Config) NetworkOptions() []mlp.Option {
	scheme, _ := mlp.ParseInitializer(c.Init)
	return []mlp.Option{
		mlp.WithSeed(c.Seed),
		mlp.WithInitializer(scheme),
		mlp.WithThreshold(c.Threshold),
		mlp.WithRpropConfig(optim.RpropConfig{
			EtaPlus:     c.Rprop.EtaPlus,
			EtaMinus:    c.Rprop.EtaMinus,
			StepMin:     c.Rprop.StepMin,
			StepMax:     c.Rprop.StepMax,
			InitialStep: c.Rprop.InitialStep,
		}),
	}
}

// UpdatePolicy returns the parsed policy. c must be valid.
func (c Config) UpdatePolicy() mlp.Policy {
	p, _ := mlp.ParsePolicy(c.Policy)
	return p
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
