// SPDX-FileCopyrightText: The go-mail Authors
//
// SPDX-License-Identifier: MIT

package mimepart

import (
	"mime"
	"net/textproto"
	"strings"
	"unicode/utf8"
)

// Header is a type wrapper for a string and represents MIME header fields of a Part.
type Header string

const (
	// HeaderContentDescription is the "Content-Description" header.
	HeaderContentDescription Header = "Content-Description"

	// HeaderContentDisposition is the "Content-Disposition" header.
	// https://datatracker.ietf.org/doc/html/rfc2183
	HeaderContentDisposition Header = "Content-Disposition"

	// HeaderContentID is the "Content-ID" header.
	HeaderContentID Header = "Content-ID"

	// HeaderContentLang is the "Content-Language" header.
	HeaderContentLang Header = "Content-Language"

	// HeaderContentLocation is the "Content-Location" header (RFC 2110).
	// https://datatracker.ietf.org/doc/html/rfc2110#section-4.3
	HeaderContentLocation Header = "Content-Location"

	// HeaderContentTransferEnc is the "Content-Transfer-Encoding" header.
	HeaderContentTransferEnc Header = "Content-Transfer-Encoding"

	// HeaderContentType is the "Content-Type" header.
	HeaderContentType Header = "Content-Type"
)

const (
	// DispositionAttachment marks a Part as an attachment
	DispositionAttachment = "attachment"

	// DispositionInline marks a Part for inline display
	DispositionInline = "inline"
)

// HeaderField is a single MIME header line of a Part, consisting of the header name and its
// value including all parameters.
type HeaderField struct {
	Name  Header
	Value string
}

// String satisfies the fmt.Stringer interface for the Header type and returns the string
// representation of the Header.
//
// Returns:
//   - A string representing the Header.
func (h Header) String() string {
	return string(h)
}

// String returns the unfolded header line of the HeaderField without line terminator.
func (f HeaderField) String() string {
	return f.Name.String() + ": " + f.Value
}

// buildHeaderFields assembles the MIME header fields for the attributes of a Part.
//
// The fields are always returned in the same order: Content-Type, Content-Transfer-Encoding,
// Content-Disposition, Content-ID, Content-Location, Content-Description and Content-Language.
// Attributes that are not set produce no header field at all.
func buildHeaderFields(p *Part) []HeaderField {
	fields := make([]HeaderField, 0, 7)

	contentType := stripControls(p.Type.String())
	if contentType == "" {
		contentType = TypeTextPlain.String()
	}
	if p.Charset != "" {
		contentType += "; charset=" + stripControls(p.Charset.String())
	}
	if p.Boundary != "" {
		contentType += `; boundary="` + stripControls(p.Boundary) + `"`
	}
	fields = append(fields, HeaderField{HeaderContentType, contentType})
	fields = append(fields, HeaderField{HeaderContentTransferEnc, stripControls(p.Encoding.String())})

	if p.Disposition != "" {
		disposition := stripControls(p.Disposition)
		if p.Filename != "" {
			disposition += `; filename="` + quoteFilename(p.Filename) + `"`
		}
		fields = append(fields, HeaderField{HeaderContentDisposition, disposition})
	}
	if p.ID != "" {
		fields = append(fields, HeaderField{HeaderContentID, angleBrackets(stripControls(p.ID))})
	}
	if p.Location != "" {
		fields = append(fields, HeaderField{HeaderContentLocation, stripControls(p.Location)})
	}
	if p.Description != "" {
		fields = append(fields, HeaderField{HeaderContentDescription, encodeText(p.Description)})
	}
	if p.Language != "" {
		fields = append(fields, HeaderField{HeaderContentLang, stripControls(p.Language)})
	}
	return fields
}

// mimeHeader converts header fields into a textproto.MIMEHeader. The header names are stored
// as is and not canonicalized, so "Content-ID" keeps its spelling.
func mimeHeader(fields []HeaderField) textproto.MIMEHeader {
	header := make(textproto.MIMEHeader, len(fields))
	for _, field := range fields {
		header[field.Name.String()] = append(header[field.Name.String()], field.Value)
	}
	return header
}

// quoteFilename prepares a filename for use in a quoted "filename" parameter. Quotes and
// backslashes are escaped. Names with non-ASCII or control characters are encoded as
// RFC 2047 encoded-word.
func quoteFilename(name string) string {
	if hasControls(name) || (!isASCII(name) && utf8.ValidString(name)) {
		return mime.BEncoding.Encode(CharsetUTF8.String(), stripInvalid(name))
	}
	var quoted strings.Builder
	quoted.Grow(len(name))
	for i := 0; i < len(name); i++ {
		if name[i] == '"' || name[i] == '\\' {
			quoted.WriteByte('\\')
		}
		quoted.WriteByte(name[i])
	}
	return quoted.String()
}

// encodeText prepares free text like the Content-Description for the header block. Text with
// non-ASCII or control characters is encoded as RFC 2047 encoded-word.
func encodeText(text string) string {
	if !utf8.ValidString(text) {
		text = stripInvalid(text)
	}
	if hasControls(text) || !isASCII(text) {
		return mime.QEncoding.Encode(CharsetUTF8.String(), text)
	}
	return text
}

// stripControls replaces control characters in a header value with a space, so that a value
// can never start a new header line.
func stripControls(value string) string {
	if !hasControls(value) {
		return value
	}
	return strings.Map(func(r rune) rune {
		if isControl(r) {
			return ' '
		}
		return r
	}, value)
}

// stripInvalid replaces invalid UTF-8 sequences with the Unicode replacement character
func stripInvalid(s string) string {
	return strings.ToValidUTF8(s, string(utf8.RuneError))
}

// hasControls reports whether s contains a control character other than horizontal tab
func hasControls(s string) bool {
	for i := 0; i < len(s); i++ {
		if isControl(rune(s[i])) {
			return true
		}
	}
	return false
}

func isControl(r rune) bool {
	return (r < ' ' && r != '\t') || r == 0x7f
}

// angleBrackets wraps id into angle brackets unless it already is
func angleBrackets(id string) string {
	if strings.HasPrefix(id, "<") && strings.HasSuffix(id, ">") {
		return id
	}
	return "<" + id + ">"
}

// isASCII reports whether s only consists of 7bit characters
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
