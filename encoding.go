// SPDX-FileCopyrightText: 2022-2023 The go-mail Authors
//
// SPDX-License-Identifier: MIT

package mimepart

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// Encoding represents a MIME transfer encoding scheme like quoted-printable or base64.
type Encoding string

// ContentType represents the media type of a Part, like "text/plain".
type ContentType string

// Charset represents a character set label of a Part, like "UTF-8".
type Charset string

const (
	// EncodingB64 represents the Base64 encoding as specified in RFC 2045.
	EncodingB64 Encoding = "base64"

	// EncodingQP represents the "quoted-printable" encoding as specified in RFC 2045.
	EncodingQP Encoding = "quoted-printable"

	// EncodingUSASCII represents the "7bit" encoding. The content is passed through unchanged.
	EncodingUSASCII Encoding = "7bit"

	// NoEncoding avoids any transfer encoding and passes the content through as "8bit"
	NoEncoding Encoding = "8bit"
)

// List of common content types
const (
	TypeAppOctetStream       ContentType = "application/octet-stream"
	TypeMultipartAlternative ContentType = "multipart/alternative"
	TypeMultipartMixed       ContentType = "multipart/mixed"
	TypeMultipartRelated     ContentType = "multipart/related"
	TypePGPSignature         ContentType = "application/pgp-signature"
	TypePGPEncrypted         ContentType = "application/pgp-encrypted"
	TypeTextHTML             ContentType = "text/html"
	TypeTextPlain            ContentType = "text/plain"
)

// List of common charsets
const (
	// CharsetUTF7 represents the "UTF-7" charset
	CharsetUTF7 Charset = "UTF-7"

	// CharsetUTF8 represents the "UTF-8" charset
	CharsetUTF8 Charset = "UTF-8"

	// CharsetASCII represents the "US-ASCII" charset
	CharsetASCII Charset = "US-ASCII"

	// CharsetISO88591 represents the "ISO-8859-1" charset
	CharsetISO88591 Charset = "ISO-8859-1"

	// CharsetISO885915 represents the "ISO-8859-15" charset
	CharsetISO885915 Charset = "ISO-8859-15"

	// CharsetWindows1252 represents the "windows-1252" charset
	CharsetWindows1252 Charset = "windows-1252"

	// CharsetShiftJIS represents the "Shift_JIS" charset
	CharsetShiftJIS Charset = "Shift_JIS"

	// CharsetGBK represents the "GBK" charset
	CharsetGBK Charset = "GBK"

	// CharsetKOI8R represents the "KOI8-R" charset
	CharsetKOI8R Charset = "KOI8-R"
)

// encodings is the closed set of transfer encodings supported by this package
var encodings = map[string]Encoding{
	EncodingUSASCII.String(): EncodingUSASCII,
	NoEncoding.String():      NoEncoding,
	EncodingB64.String():     EncodingB64,
	EncodingQP.String():      EncodingQP,
}

// ParseEncoding returns the Encoding for the given transfer encoding token.
//
// The token is matched case-insensitively after trimming surrounding whitespace. Tokens outside
// of "7bit", "8bit", "base64" and "quoted-printable" are rejected with ErrInvalidEncoding.
//
// Parameters:
//   - token: The transfer encoding token as it appears in a Content-Transfer-Encoding header.
//
// Returns:
//   - The matching Encoding.
//   - An error wrapping ErrInvalidEncoding if the token is unknown.
func ParseEncoding(token string) (Encoding, error) {
	if enc, ok := encodings[strings.ToLower(strings.TrimSpace(token))]; ok {
		return enc, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidEncoding, token)
}

// Valid reports whether the Encoding is one of the supported transfer encodings.
func (e Encoding) Valid() bool {
	_, ok := encodings[string(e)]
	return ok
}

// check returns an error wrapping ErrInvalidEncoding if e is not a supported transfer encoding.
func (e Encoding) check() error {
	if !e.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidEncoding, string(e))
	}
	return nil
}

// String satisfies the fmt.Stringer interface for the Encoding type
func (e Encoding) String() string {
	return string(e)
}

// String satisfies the fmt.Stringer interface for the ContentType type
func (c ContentType) String() string {
	return string(c)
}

// String satisfies the fmt.Stringer interface for the Charset type
func (c Charset) String() string {
	return string(c)
}

// Canonical resolves the Charset label to its preferred MIME name as registered with the IANA.
//
// Aliases like "latin1" or "l1" resolve to "ISO-8859-1". The label is only looked up, the
// content of a Part is never transcoded.
//
// Returns:
//   - The canonical Charset.
//   - An error if the label is not a known charset.
func (c Charset) Canonical() (Charset, error) {
	label := strings.TrimSpace(c.String())
	enc, err := ianaindex.MIME.Encoding(label)
	if err != nil || enc == nil {
		enc, err = ianaindex.IANA.Encoding(label)
	}
	if err != nil || enc == nil {
		return c, fmt.Errorf("unknown charset %q", c.String())
	}
	name, err := ianaindex.MIME.Name(enc)
	if err != nil {
		name, err = ianaindex.IANA.Name(enc)
		if err != nil {
			return c, fmt.Errorf("no MIME name for charset %q: %w", c.String(), err)
		}
	}
	return Charset(name), nil
}
