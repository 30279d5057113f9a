// SPDX-FileCopyrightText: 2022-2023 The go-mail Authors
//
// SPDX-License-Identifier: MIT

package mimepart

import (
	"fmt"
	"io"
	"strings"
)

// MaxHeaderLength defines the maximum line length for a MIME header
// RFC 2047 suggests 76 characters
const MaxHeaderLength = 76

// paramSeparator separates the parameters of a header value
const paramSeparator = "; "

// partWriter handles the I/O of a Part to an io.Writer
type partWriter struct {
	err error
	n   int64
	w   io.Writer
}

// Write implements the io.Writer interface for partWriter
func (pw *partWriter) Write(p []byte) (int, error) {
	if pw.err != nil {
		return 0, fmt.Errorf("failed to write due to previous error: %w", pw.err)
	}

	var n int
	n, pw.err = pw.w.Write(p)
	pw.n += int64(n)
	return n, pw.err
}

// writeString writes a string into the partWriter's io.Writer interface
func (pw *partWriter) writeString(s string) {
	if pw.err != nil {
		return
	}
	var n int
	n, pw.err = io.WriteString(pw.w, s)
	pw.n += int64(n)
}

// writeHeaders writes all header fields followed by their line terminator
func (pw *partWriter) writeHeaders(fields []HeaderField) {
	for _, field := range fields {
		pw.writeHeader(field)
	}
}

// writeHeader writes a header into the partWriter's io.Writer
//
// Values that exceed MaxHeaderLength are folded in front of a parameter. Folding keeps the
// "; " separator intact once the header is unfolded again.
func (pw *partWriter) writeHeader(field HeaderField) {
	pw.writeString(field.Name.String())
	pw.writeString(": ")

	lineLen := len(field.Name) + 2
	for i, param := range strings.Split(field.Value, paramSeparator) {
		if i > 0 {
			if lineLen+len(paramSeparator)+len(param) > MaxHeaderLength {
				pw.writeString(";" + SingleNewLine + " ")
				lineLen = 1
			} else {
				pw.writeString(paramSeparator)
				lineLen += len(paramSeparator)
			}
		}
		pw.writeString(param)
		lineLen += len(param)
	}
	pw.writeString(SingleNewLine)
}

// writeBody copies the encoded content into the partWriter's io.Writer
func (pw *partWriter) writeBody(r io.Reader) {
	if pw.err != nil {
		return
	}
	if _, err := io.Copy(pw, r); err != nil && pw.err == nil {
		pw.err = err
	}
}
