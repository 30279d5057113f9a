// SPDX-FileCopyrightText: 2022-2023 The go-mail Authors
//
// SPDX-License-Identifier: MIT

package mimepart

import (
	"encoding/base64"

	"golang.org/x/text/transform"
)

// newlineBytes is a byte slice representation of the SingleNewLine constant used for line breaking
// in encoding processes.
var newlineBytes = []byte(SingleNewLine)

// Base64LineBreaker is used to handle base64 encoding with the insertion of new lines after a certain
// number of characters.
//
// It satisfies the transform.Transformer interface. A line break is only emitted in front of the
// first character of a new line, so the last line never carries a trailing line break and empty
// input produces empty output.
type Base64LineBreaker struct {
	used int
}

// Reset implements the transform.Transformer interface and starts a new line
func (l *Base64LineBreaker) Reset() {
	l.used = 0
}

// Transform copies src to dst, ensuring lines do not exceed MaxBodyLength.
func (l *Base64LineBreaker) Transform(dst, src []byte, _ bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if l.used == MaxBodyLength {
			if len(dst)-nDst < len(newlineBytes) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], newlineBytes)
			l.used = 0
		}
		n := min(MaxBodyLength-l.used, len(src)-nSrc, len(dst)-nDst)
		if n == 0 {
			return nDst, nSrc, transform.ErrShortDst
		}
		copy(dst[nDst:], src[nSrc:nSrc+n])
		nDst += n
		nSrc += n
		l.used += n
	}
	return nDst, nSrc, nil
}

// base64Encoder is a transform.Transformer that applies the standard, padded base64 encoding.
//
// Complete 3 byte groups are encoded as soon as they are available, a trailing partial group
// is held back until the end of the input.
type base64Encoder struct {
	transform.NopResetter
}

// Transform implements the transform.Transformer interface for the base64Encoder
func (base64Encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if groups := min((len(src)-nSrc)/3, (len(dst)-nDst)/4); groups > 0 {
		base64.StdEncoding.Encode(dst[nDst:], src[nSrc:nSrc+groups*3])
		nDst += groups * 4
		nSrc += groups * 3
	}
	rest := len(src) - nSrc
	switch {
	case rest == 0:
		return nDst, nSrc, nil
	case rest >= 3:
		return nDst, nSrc, transform.ErrShortDst
	case !atEOF:
		return nDst, nSrc, transform.ErrShortSrc
	case len(dst)-nDst < 4:
		return nDst, nSrc, transform.ErrShortDst
	}
	base64.StdEncoding.Encode(dst[nDst:], src[nSrc:])
	return nDst + 4, nSrc + rest, nil
}

// newBase64Transformer returns a transform.Transformer that base64 encodes its input and wraps
// the encoded output into lines of MaxBodyLength characters.
func newBase64Transformer() transform.Transformer {
	return transform.Chain(base64Encoder{}, &Base64LineBreaker{})
}
