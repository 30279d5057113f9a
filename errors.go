// SPDX-FileCopyrightText: 2022-2023 The go-mail Authors
//
// SPDX-License-Identifier: MIT

package mimepart

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidEncoding is returned if a transfer encoding outside of 7bit, 8bit, base64 and
	// quoted-printable is requested
	ErrInvalidEncoding = errors.New("invalid transfer encoding")

	// ErrNotStream is returned if an encoded stream is requested from a Part that was not
	// created from a stream source
	ErrNotStream = errors.New("part content is not a stream")

	// ErrStreamConsumed is returned if a non-seekable stream source is read a second time
	ErrStreamConsumed = errors.New("stream is not seekable and has already been consumed")

	// ErrNoSource is returned if a Part has no content source, e.g. a zero value Part
	ErrNoSource = errors.New("part has no content source")
)

// IOError is an error wrapper for failures of the underlying content source of a Part.
//
// It records the failed operation (like "open", "read", "seek" or "close") and the original
// error. The original error is accessible via errors.Is and errors.As.
type IOError struct {
	Op  string
	Err error
}

// Error implements the error interface for the IOError type.
func (e *IOError) Error() string {
	var errMessage strings.Builder
	errMessage.WriteString("content source ")
	if e.Op != "" {
		errMessage.WriteString(e.Op)
		errMessage.WriteString(" ")
	}
	errMessage.WriteString("failed")
	if e.Err != nil {
		errMessage.WriteString(": ")
		errMessage.WriteString(e.Err.Error())
	}
	return errMessage.String()
}

// Unwrap returns the underlying error of the IOError
func (e *IOError) Unwrap() error {
	return e.Err
}

// Is implements the errors.Is functionality and matches any other IOError
func (e *IOError) Is(target error) bool {
	var t *IOError
	return errors.As(target, &t)
}

// newIOError wraps err into an IOError for the given operation. An error that already is an
// IOError is returned unchanged.
func newIOError(op string, err error) error {
	if err == nil {
		return nil
	}
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return err
	}
	return &IOError{Op: op, Err: err}
}
