package mlp

import "github.com/pkg/errors"

// Errors returned by Network operations.
var (
	// ErrInvalidSize is returned for non-positive input, output or epoch counts.
	ErrInvalidSize = errors.New("mlp: sizes must be positive")

	// ErrInvalidLearningRate is returned for a non-positive or NaN learning rate.
	ErrInvalidLearningRate = errors.New("mlp: learning rate must be positive")

	// ErrSizeMismatch is returned when a vector does not fit the network.
	ErrSizeMismatch = errors.New("mlp: size mismatch")

	// ErrNotForwarded is returned by backward calls without a preceding forward pass.
	ErrNotForwarded = errors.New("mlp: backward called before forward")

	// ErrNoGradients is returned by update calls without fresh gradients.
	ErrNoGradients = errors.New("mlp: no gradients computed since last forward")

	// ErrDiverged is returned by training loops that observe a NaN or infinite error.
	ErrDiverged = errors.New("mlp: training diverged")

	// ErrEmptyDataset is returned by dataset loops given no rows.
	ErrEmptyDataset = errors.New("mlp: empty dataset")

	// ErrUnknownPolicy is returned for an unrecognised update policy.
	ErrUnknownPolicy = errors.New("mlp: unknown update policy")

	// ErrUnknownInitializer is returned for an unrecognised initialisation scheme.
	ErrUnknownInitializer = errors.New("mlp: unknown initializer")
)
