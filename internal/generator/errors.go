package generator

import "errors"

var (
	ErrGenerationFailed            = errors.New("failed to generate questions")
	ErrMalformedGenerationResponse = errors.New("malformed generation response")
	ErrUnknownCategory             = errors.New("unknown category")
	ErrGenerationInProgress        = errors.New("generation already in progress")
)
