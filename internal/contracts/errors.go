package contracts

import "errors"

// Error taxonomy shared by all stages.
// Every error is terminal to its stage; there is no retry.
var (
	ErrInvalidInputSize        = errors.New("invalid input size")
	ErrMissingUpstreamArtifact = errors.New("missing upstream artifact")
	ErrMalformedArtifact       = errors.New("malformed artifact")
	ErrIOFailure               = errors.New("artifact I/O failure")
	ErrInvalidParameters       = errors.New("invalid simulation parameters")
	ErrInvalidInput            = errors.New("invalid input")
)
