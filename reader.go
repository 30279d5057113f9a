// SPDX-FileCopyrightText: 2022-2023 The go-mail Authors
//
// SPDX-License-Identifier: MIT

package mimepart

import (
	"errors"
	"io"
)

// sourceReader is a type that implements the io.Reader interface for the stream of a content
// source. Failures of the underlying stream are reported as IOError.
type sourceReader struct {
	r   io.Reader
	n   int64
	err error
}

// Read reads up to len(p) bytes from the underlying stream to satisfy the io.Reader interface
func (r *sourceReader) Read(p []byte) (n int, err error) {
	if r.err != nil {
		return 0, r.err
	}
	n, err = r.r.Read(p)
	r.n += int64(n)
	if err != nil && !errors.Is(err, io.EOF) {
		r.err = newIOError("read", err)
		return n, r.err
	}
	return n, err
}
