// Package errors provides sentinel errors and error types for libchess-go.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that is not legal in the position.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidMove indicates move text that cannot be parsed.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInvalidSquare indicates a square name or index off the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrCastlingRight indicates a castling right the piece placement
	// cannot support.
	ErrCastlingRight = errors.New("unsupported castling right")

	// ErrInvalidArgument indicates an out-of-range board attribute such as
	// a negative halfmove clock.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidPosition indicates a loadable position that cannot arise in
	// a game of chess.
	ErrInvalidPosition = errors.New("invalid position")
)

// FENError reports which field of a FEN string was rejected.
// It unwraps to the underlying error, normally ErrInvalidFEN.
type FENError struct {
	Err    error  // The underlying error
	Field  string // Field name, e.g. "placement" or "castling"
	Value  string // The offending text (may be a single rank)
	Detail string // Optional explanation
}

// Error returns a formatted error message including all available context.
func (e *FENError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Value != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Value))
	}
	if e.Detail != "" {
		parts = append(parts, e.Detail)
	}

	context := strings.Join(parts, ": ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "FEN error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the FENError wrapper.
func (e *FENError) Unwrap() error {
	return e.Err
}

// NewFENError builds a FENError wrapping ErrInvalidFEN.
func NewFENError(field, value, detail string) *FENError {
	return &FENError{
		Err:    ErrInvalidFEN,
		Field:  field,
		Value:  value,
		Detail: detail,
	}
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
