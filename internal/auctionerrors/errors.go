package auctionerrors

import "errors"

// Parsing/validation errors surfaced at the service boundary
var (
	ErrInvalidPayload = errors.New("invalid auction payload")
	ErrBadTimeFormat  = errors.New("time has incorrect data format")
)

// Collaborator errors
var (
	ErrBackend       = errors.New("auction store unavailable")
	ErrVisualization = errors.New("failed to generate bid history graphic")
	ErrNoBidHistory  = errors.New("not enough bid history to visualize")
)
