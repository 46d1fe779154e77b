package cli

import "errors"

var (
	// ErrUnknownCommand is returned by Run for a command name it does not know.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrMissingArgument is returned when a command lacks a positional argument.
	ErrMissingArgument = errors.New("missing argument")

	// ErrNoKeyMaterial is returned by commands that need the cryptographer
	// when no key triple is configured.
	ErrNoKeyMaterial = errors.New("cryptographer key material is not configured")

	// ErrBoundsNotApplicable is returned when -min or -max is given for a
	// kind that is not int or float.
	ErrBoundsNotApplicable = errors.New("bounds apply to int and float settings only")
)
