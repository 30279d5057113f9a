// SPDX-FileCopyrightText: 2022-2023 The go-mail Authors
//
// SPDX-License-Identifier: MIT

package mimepart

import "golang.org/x/text/transform"

// upperHex is the alphabet used for "=XX" escape sequences
const upperHex = "0123456789ABCDEF"

// qpSoftBreak is the soft line break of the quoted-printable encoding
var qpSoftBreak = []byte("=" + SingleNewLine)

// qpEncoder is a transform.Transformer that applies the quoted-printable encoding as specified
// in RFC 2045, section 6.7 to arbitrary bytes.
//
// Unlike mime/quotedprintable it never normalizes line endings: a CRLF or a bare LF in the input
// is emitted verbatim as a hard line break, while a lone CR is escaped. Whitespace in front of a
// hard line break or at the end of the input is escaped, so that decoders which strip trailing
// whitespace restore the input exactly. Encoded lines are kept at MaxBodyLength characters or
// less by soft line breaks.
type qpEncoder struct {
	lineLen int
}

// Reset implements the transform.Transformer interface and clears the line state
func (q *qpEncoder) Reset() {
	q.lineLen = 0
}

// Transform implements the transform.Transformer interface for the qpEncoder
func (q *qpEncoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		char := src[nSrc]

		if char == '\n' {
			if len(dst)-nDst < 1 {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = '\n'
			nDst++
			nSrc++
			q.lineLen = 0
			continue
		}
		if char == '\r' {
			if nSrc+1 >= len(src) && !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			if nSrc+1 < len(src) && src[nSrc+1] == '\n' {
				if len(dst)-nDst < 2 {
					return nDst, nSrc, transform.ErrShortDst
				}
				dst[nDst], dst[nDst+1] = '\r', '\n'
				nDst += 2
				nSrc += 2
				q.lineLen = 0
				continue
			}
		}

		escape := !isQPLiteral(char)
		if char == ' ' || char == '\t' {
			trailing, ok := endsLine(src[nSrc+1:], atEOF)
			if !ok {
				return nDst, nSrc, transform.ErrShortSrc
			}
			escape = trailing
		}

		width := 1
		if escape {
			width = 3
		}
		// One column is reserved for the "=" of a soft line break
		softBreak := q.lineLen+width > MaxBodyLength-1
		needed := width
		if softBreak {
			needed += len(qpSoftBreak)
		}
		if len(dst)-nDst < needed {
			return nDst, nSrc, transform.ErrShortDst
		}
		if softBreak {
			nDst += copy(dst[nDst:], qpSoftBreak)
			q.lineLen = 0
		}
		if escape {
			dst[nDst] = '='
			dst[nDst+1] = upperHex[char>>4]
			dst[nDst+2] = upperHex[char&0x0f]
		} else {
			dst[nDst] = char
		}
		nDst += width
		nSrc++
		q.lineLen += width
	}
	return nDst, nSrc, nil
}

// isQPLiteral reports whether char may appear unescaped in a quoted-printable line.
func isQPLiteral(char byte) bool {
	if char == ' ' || char == '\t' {
		return true
	}
	return char >= '!' && char <= '~' && char != '='
}

// endsLine reports whether the bytes following a whitespace character start a hard line break
// or the input ends. ok is false if more input is required to decide.
func endsLine(rest []byte, atEOF bool) (trailing, ok bool) {
	if len(rest) == 0 {
		return atEOF, atEOF
	}
	switch rest[0] {
	case '\n':
		return true, true
	case '\r':
		if len(rest) < 2 {
			// A lone CR at the end of the input is escaped, so the whitespace is not trailing
			return false, atEOF
		}
		return rest[1] == '\n', true
	default:
		return false, true
	}
}
