// SPDX-FileCopyrightText: 2022-2023 The go-mail Authors
//
// SPDX-License-Identifier: MIT

package mimepart

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"mime/quotedprintable"

	"golang.org/x/text/transform"
)

const (
	// MaxBodyLength defines the maximum line length for an encoded body. RFC 2045 limits
	// base64 and quoted-printable lines to 76 characters
	MaxBodyLength = 76

	// SingleNewLine represents a new line that is used to terminate encoded lines and headers
	SingleNewLine = "\r\n"
)

// NewEncoder returns a fresh transform.Transformer that applies the given transfer encoding.
//
// The same transformer backs the buffered (Encode) and the streaming (NewEncodingReader and
// NewEncodingWriter) paths, so both produce identical output for identical input, regardless of
// how the input is chunked. 7bit and 8bit are pass-through encodings.
//
// Parameters:
//   - encoding: The transfer Encoding to apply.
//
// Returns:
//   - A transform.Transformer for the Encoding.
//   - An error wrapping ErrInvalidEncoding if the Encoding is not supported.
func NewEncoder(encoding Encoding) (transform.Transformer, error) {
	switch encoding {
	case EncodingUSASCII, NoEncoding:
		return transform.Nop, nil
	case EncodingB64:
		return newBase64Transformer(), nil
	case EncodingQP:
		return &qpEncoder{}, nil
	default:
		return nil, encoding.check()
	}
}

// Encode applies the given transfer encoding to content and returns the encoded bytes.
//
// Empty content always encodes to empty output. Any byte sequence, including binary data, is
// valid input for every encoding.
//
// Parameters:
//   - content: The raw content to encode.
//   - encoding: The transfer Encoding to apply.
//
// Returns:
//   - The encoded content.
//   - An error wrapping ErrInvalidEncoding if the Encoding is not supported.
func Encode(content []byte, encoding Encoding) ([]byte, error) {
	transformer, err := NewEncoder(encoding)
	if err != nil {
		return nil, err
	}
	encoded, _, err := transform.Bytes(transformer, content)
	if err != nil {
		return nil, fmt.Errorf("failed to apply %s encoding: %w", encoding, err)
	}
	return encoded, nil
}

// NewEncodingReader returns an io.Reader that lazily reads from reader and returns the content
// in the given transfer encoding.
func NewEncodingReader(reader io.Reader, encoding Encoding) (io.Reader, error) {
	transformer, err := NewEncoder(encoding)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(reader, transformer), nil
}

// NewEncodingWriter returns an io.WriteCloser that encodes everything written to it in the given
// transfer encoding and writes the result to writer. Close must be called to flush the final
// base64 group or quoted-printable character; it does not close writer.
func NewEncodingWriter(writer io.Writer, encoding Encoding) (io.WriteCloser, error) {
	transformer, err := NewEncoder(encoding)
	if err != nil {
		return nil, err
	}
	return transform.NewWriter(writer, transformer), nil
}

// NewDecodingReader returns an io.Reader that decodes the content read from reader using the
// given transfer encoding. Line breaks within base64 content are ignored.
func NewDecodingReader(reader io.Reader, encoding Encoding) (io.Reader, error) {
	switch encoding {
	case EncodingUSASCII, NoEncoding:
		return reader, nil
	case EncodingB64:
		return base64.NewDecoder(base64.StdEncoding, reader), nil
	case EncodingQP:
		return quotedprintable.NewReader(reader), nil
	default:
		return nil, encoding.check()
	}
}

// Decode reverses Encode and returns the raw content for the given encoded content.
func Decode(content []byte, encoding Encoding) ([]byte, error) {
	reader, err := NewDecodingReader(bytes.NewReader(content), encoding)
	if err != nil {
		return nil, err
	}
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s content: %w", encoding, err)
	}
	return decoded, nil
}
