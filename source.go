// SPDX-FileCopyrightText: 2022-2023 The go-mail Authors
//
// SPDX-License-Identifier: MIT

package mimepart

import (
	"bytes"
	"io"
	"io/fs"
)

// contentSource is the origin of the content of a Part. It is either an owned byte buffer or
// an owned stream.
type contentSource interface {
	// readAll materializes the whole content
	readAll() ([]byte, error)
	// open returns a reader that is positioned at the start of the content
	open() (io.Reader, error)
	// isStream reports whether the content is read from a stream
	isStream() bool
	// close releases the source
	close() error
}

// bufferSource is a contentSource for in-memory content.
type bufferSource struct {
	buf []byte
}

// newBufferSource returns a bufferSource that owns a copy of buf
func newBufferSource(buf []byte) *bufferSource {
	return &bufferSource{buf: bytes.Clone(buf)}
}

func (s *bufferSource) readAll() ([]byte, error) {
	return bytes.Clone(s.buf), nil
}

func (s *bufferSource) open() (io.Reader, error) {
	return bytes.NewReader(s.buf), nil
}

func (s *bufferSource) isStream() bool { return false }

func (s *bufferSource) close() error { return nil }

// streamSource is a contentSource for content that is read from an io.Reader.
//
// If the reader implements io.Seeker, it is rewound to offset 0 before every read, so the
// content can be read any number of times. Otherwise the stream can be read exactly once.
type streamSource struct {
	r        io.Reader
	consumed bool
	closed   bool
}

// rewind positions the stream at the start of the content
func (s *streamSource) rewind() error {
	if s.closed {
		return newIOError("open", fs.ErrClosed)
	}
	if seeker, ok := s.r.(io.Seeker); ok {
		if _, err := seeker.Seek(0, io.SeekStart); err != nil {
			return newIOError("seek", err)
		}
		return nil
	}
	if s.consumed {
		return newIOError("open", ErrStreamConsumed)
	}
	s.consumed = true
	return nil
}

func (s *streamSource) open() (io.Reader, error) {
	if err := s.rewind(); err != nil {
		return nil, err
	}
	return &sourceReader{r: s.r}, nil
}

func (s *streamSource) readAll() ([]byte, error) {
	reader, err := s.open()
	if err != nil {
		return nil, err
	}
	return io.ReadAll(reader)
}

func (s *streamSource) isStream() bool { return true }

// close closes the stream if it implements io.Closer. Subsequent calls are no-ops.
func (s *streamSource) close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if closer, ok := s.r.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return newIOError("close", err)
		}
	}
	return nil
}
