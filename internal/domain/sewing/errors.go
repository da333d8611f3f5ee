package sewing

import "errors"

var (
	ErrInstructionNotFound = errors.New("sewing instruction not found")
	ErrInvalidTransition   = errors.New("invalid status transition")
)
