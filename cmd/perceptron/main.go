// Command perceptron trains a bias-free feed-forward network on a small
// dataset and reports the per-sample outputs.
//
// Usage:
//
//	go run ./cmd/perceptron -dataset xor -policy rprop -epochs 5000
//	go run ./cmd/perceptron -config train.yaml -v
//	go run ./cmd/perceptron version
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/born-ml/perceptron/internal/config"
	"github.com/born-ml/perceptron/internal/dataset"
	"github.com/born-ml/perceptron/internal/mlp"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("perceptron %s\n", version)
		return
	}

	configPath := flag.String("config", "", "YAML configuration file")
	policy := flag.String("policy", "", "update policy: delta, gradient, l1, l2, rprop")
	epochs := flag.Int("epochs", 0, "epoch budget")
	lr := flag.Float64("lr", 0, "learning rate")
	seed := flag.Uint64("seed", 0, "weight initialisation seed")
	data := flag.String("dataset", "", "CSV file or built-in dataset (xor, and)")
	verbose := flag.Bool("v", false, "log every epoch")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	// Flags override the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "policy":
			cfg.Policy = *policy
		case "epochs":
			cfg.Epochs = *epochs
		case "lr":
			cfg.LearningRate = *lr
		case "seed":
			cfg.Seed = *seed
		case "dataset":
			cfg.Dataset = *data
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	samples, ok := dataset.Builtin(cfg.Dataset)
	if !ok {
		var err error
		if samples, err = dataset.Load(cfg.Dataset, cfg.Inputs, cfg.Outputs); err != nil {
			log.Fatalf("Failed to load dataset: %v", err)
		}
	}

	opts := append(cfg.NetworkOptions(), mlp.WithLogger(logger))
	net, err := mlp.New(cfg.Inputs, cfg.Outputs, cfg.Epochs, cfg.LearningRate, opts...)
	if err != nil {
		log.Fatalf("Failed to create network: %v", err)
	}

	fmt.Printf("Network: %d inputs, %d outputs, %d layers of width %d\n",
		net.Inputs(), net.Outputs(), net.Layers(), net.Width())
	fmt.Printf("Policy: %s, epochs: %d, lr: %g, samples: %d\n\n",
		cfg.UpdatePolicy(), cfg.Epochs, cfg.LearningRate, len(samples))

	result, err := net.Fit(samples, cfg.UpdatePolicy())
	if err != nil {
		log.Fatalf("Training failed: %v", err)
	}

	fmt.Printf("Epochs run: %d, final MSE: %.6f, converged: %t\n\n",
		result.Epochs, result.MSE, result.Trained)

	for i, s := range samples {
		out, mse, err := net.Evaluate(s.Input, s.Expected)
		if err != nil {
			log.Fatalf("Evaluate sample %d: %v", i, err)
		}
		fmt.Printf("  %v -> %.4f (expected %v, mse %.6f)\n", s.Input, out, s.Expected, mse)
	}

	fmt.Printf("\nL1 penalty: %.4f, L2 penalty: %.4f\n", net.L1Penalty(), net.L2Penalty())
}
