// SPDX-FileCopyrightText: 2022-2023 The go-mail Authors
//
// SPDX-License-Identifier: MIT

package mimepart

import (
	"io"
	"net/textproto"
	"strings"

	"github.com/google/uuid"

	"github.com/wneessen/go-mimepart/log"
)

// PartOption returns a function that can be used for grouping Part options
type PartOption func(*Part)

// Part is a single MIME body part.
//
// It holds the content of the part, which is fixed at construction time, and the MIME attributes
// that describe it. The attributes are plain fields and can be changed freely at any time; every
// call to Content, EncodedReader, Headers or WriteTo uses the attribute values at the time of the
// call. A Part must not be read by concurrent goroutines.
type Part struct {
	// Type is the media type of the content. Defaults to "text/plain".
	Type ContentType

	// Encoding is the transfer encoding that is applied to the content. Defaults to "7bit".
	Encoding Encoding

	// ID is the content identifier. It is rendered in angle brackets in the Content-ID header.
	ID string

	// Filename is added as "filename" parameter to the Content-Disposition header.
	Filename string

	// Disposition is the content disposition, like "attachment" or "inline".
	Disposition string

	// Charset is added as "charset" parameter to the Content-Type header. The content itself is
	// never transcoded.
	Charset Charset

	// Boundary is added as "boundary" parameter to the Content-Type header of multipart types.
	Boundary string

	// Location is the Content-Location of the part.
	Location string

	// Description is the Content-Description of the part.
	Description string

	// Language is the Content-Language of the part.
	Language string

	src contentSource
	log log.Logger
}

// NewPart returns a new Part for the given content. The content is copied, later changes to
// the content slice do not affect the Part.
func NewPart(content []byte, opts ...PartOption) *Part {
	return newPart(newBufferSource(content), opts...)
}

// NewPartFromString returns a new Part for the given string content.
func NewPartFromString(content string, opts ...PartOption) *Part {
	return newPart(&bufferSource{buf: []byte(content)}, opts...)
}

// NewPartFromReader returns a new Part that reads its content from the given stream.
//
// The Part takes ownership of the stream: it must not be read by anybody else while the Part is
// in use and it is closed by Part.Close if it implements io.Closer. If the stream implements
// io.Seeker, it is rewound to its start before each read. A stream that can not seek can only
// be read once.
func NewPartFromReader(reader io.Reader, opts ...PartOption) *Part {
	return newPart(&streamSource{r: reader}, opts...)
}

// newPart returns a new Part with default attributes for the given contentSource
func newPart(src contentSource, opts ...PartOption) *Part {
	p := &Part{
		Type:     TypeTextPlain,
		Encoding: EncodingUSASCII,
		src:      src,
	}

	// Override defaults with optionally provided PartOption functions
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}

// WithPartEncoding overrides the default Part encoding
func WithPartEncoding(encoding Encoding) PartOption {
	return func(p *Part) {
		p.Encoding = encoding
	}
}

// WithPartContentType overrides the default Part content type
func WithPartContentType(contentType ContentType) PartOption {
	return func(p *Part) {
		p.Type = contentType
	}
}

// WithPartCharset sets the charset parameter of the Part
func WithPartCharset(charset Charset) PartOption {
	return func(p *Part) {
		p.Charset = charset
	}
}

// WithPartContentID sets the content identifier of the Part
func WithPartContentID(id string) PartOption {
	return func(p *Part) {
		p.ID = id
	}
}

// WithPartFilename sets the filename of the Part
func WithPartFilename(filename string) PartOption {
	return func(p *Part) {
		p.Filename = filename
	}
}

// WithPartDisposition sets the content disposition of the Part
func WithPartDisposition(disposition string) PartOption {
	return func(p *Part) {
		p.Disposition = disposition
	}
}

// WithPartLocation sets the content location of the Part
func WithPartLocation(location string) PartOption {
	return func(p *Part) {
		p.Location = location
	}
}

// WithPartContentDescription sets the content description of the Part
func WithPartContentDescription(description string) PartOption {
	return func(p *Part) {
		p.Description = description
	}
}

// WithPartLanguage sets the content language of the Part
func WithPartLanguage(language string) PartOption {
	return func(p *Part) {
		p.Language = language
	}
}

// WithPartBoundary sets the multipart boundary parameter of the Part
func WithPartBoundary(boundary string) PartOption {
	return func(p *Part) {
		p.Boundary = boundary
	}
}

// WithPartLogger sets a logger that receives debug messages about the processing of the Part
func WithPartLogger(logger log.Logger) PartOption {
	return func(p *Part) {
		p.log = logger
	}
}

// Content returns the content of the Part in its current transfer encoding.
//
// For a Part that was created from a stream, the stream is rewound and read through the encoder.
//
// Returns:
//   - The encoded content as string.
//   - An error wrapping ErrInvalidEncoding if the Encoding of the Part is not supported, or an
//     IOError if the content source could not be read.
func (p *Part) Content() (string, error) {
	if err := p.Encoding.check(); err != nil {
		return "", err
	}
	if p.src == nil {
		return "", ErrNoSource
	}
	if p.src.isStream() {
		source, err := p.src.open()
		if err != nil {
			return "", err
		}
		p.debugf(log.StageSource, "opened content source (stream: %t)", true)
		reader, err := NewEncodingReader(source, p.Encoding)
		if err != nil {
			return "", err
		}
		var buf strings.Builder
		written, err := io.Copy(&buf, reader)
		if err != nil {
			return "", err
		}
		var read int64
		if counter, ok := source.(*sourceReader); ok {
			read = counter.n
		}
		p.debugf(log.StageEncode, "encoded %d bytes of content to %d bytes of %s", read, written, p.Encoding)
		return buf.String(), nil
	}

	raw, err := p.src.readAll()
	if err != nil {
		return "", err
	}
	encoded, err := Encode(raw, p.Encoding)
	if err != nil {
		return "", err
	}
	p.debugf(log.StageEncode, "encoded %d bytes of content to %d bytes of %s", len(raw), len(encoded),
		p.Encoding)
	return string(encoded), nil
}

// EncodedReader returns an io.Reader that lazily reads the stream of the Part and returns it in
// the current transfer encoding. The stream is rewound to its start first.
//
// Returns:
//   - An io.Reader with the encoded content.
//   - ErrNotStream if the Part was not created from a stream, an error wrapping
//     ErrInvalidEncoding if the Encoding is not supported, or an IOError if the stream could
//     not be rewound.
func (p *Part) EncodedReader() (io.Reader, error) {
	if !p.IsStream() {
		return nil, ErrNotStream
	}
	if err := p.Encoding.check(); err != nil {
		return nil, err
	}
	return p.encodedReader()
}

// encodedReader opens the content source of the Part and wraps it into an encoder
func (p *Part) encodedReader() (io.Reader, error) {
	reader, err := p.src.open()
	if err != nil {
		return nil, err
	}
	p.debugf(log.StageSource, "opened content source (stream: %t)", p.src.isStream())
	return NewEncodingReader(reader, p.Encoding)
}

// RawContent returns the content of the Part exactly as it was supplied, regardless of the
// transfer encoding.
func (p *Part) RawContent() ([]byte, error) {
	if p.src == nil {
		return nil, ErrNoSource
	}
	return p.src.readAll()
}

// IsStream reports whether the Part reads its content from a stream
func (p *Part) IsStream() bool {
	return p.src != nil && p.src.isStream()
}

// HeaderFields returns the MIME header fields of the Part in a stable order.
//
// Content-Type and Content-Transfer-Encoding are always present, followed by Content-Disposition,
// Content-ID, Content-Location, Content-Description and Content-Language if the corresponding
// attribute is set.
func (p *Part) HeaderFields() []HeaderField {
	fields := buildHeaderFields(p)
	p.debugf(log.StageHeader, "assembled %d header fields", len(fields))
	return fields
}

// Headers returns the MIME headers of the Part as a block of CRLF terminated header lines. Long
// header values are folded.
func (p *Part) Headers() string {
	var buf strings.Builder
	pw := &partWriter{w: &buf}
	pw.writeHeaders(p.HeaderFields())
	return buf.String()
}

// MIMEHeader returns the MIME headers of the Part as textproto.MIMEHeader, ready to be used with
// multipart.Writer.CreatePart.
func (p *Part) MIMEHeader() textproto.MIMEHeader {
	return mimeHeader(p.HeaderFields())
}

// WriteTo writes the MIME headers, an empty line and the encoded content of the Part to the
// given io.Writer. It satisfies the io.WriterTo interface.
func (p *Part) WriteTo(writer io.Writer) (int64, error) {
	if err := p.Encoding.check(); err != nil {
		return 0, err
	}
	if p.src == nil {
		return 0, ErrNoSource
	}
	reader, err := p.encodedReader()
	if err != nil {
		return 0, err
	}

	pw := &partWriter{w: writer}
	pw.writeHeaders(p.HeaderFields())
	pw.writeString(SingleNewLine)
	pw.writeBody(reader)
	if pw.err != nil {
		return pw.n, pw.err
	}
	p.debugf(log.StageEncode, "wrote %d bytes of %s encoded part", pw.n, p.Encoding)
	return pw.n, nil
}

// Close releases the content source of the Part and closes its stream, if it has one.
func (p *Part) Close() error {
	if p.src == nil {
		return nil
	}
	return p.src.close()
}

// debugf logs a debug message if a logger is set for the Part
func (p *Part) debugf(stage log.Stage, format string, args ...interface{}) {
	if p.log == nil {
		return
	}
	p.log.Debugf(log.Log{Stage: stage, Format: format, Messages: args})
}

// NewContentID returns a new, globally unique content identifier for the given domain, which
// can be used as ID of a Part. If domain is empty, only the random part is returned.
func NewContentID(domain string) string {
	id := uuid.NewString()
	if domain == "" {
		return id
	}
	return id + "@" + domain
}

