// SPDX-FileCopyrightText: 2022-2023 The go-mail Authors
//
// SPDX-License-Identifier: MIT

package mimepart

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// failWriter is a type that implements io.Writer and fails on every write
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("intentional write failure")
}

func TestPartWriter_Write(t *testing.T) {
	t.Run("partWriter writes to memory", func(t *testing.T) {
		buffer := bytes.NewBuffer(nil)
		pw := &partWriter{w: buffer}
		n, err := pw.Write([]byte("test"))
		if err != nil {
			t.Fatalf("partWriter failed to write: %s", err)
		}
		if n != 4 || pw.n != 4 {
			t.Errorf("partWriter counted wrong number of bytes. Expected: %d, got: %d/%d", 4, n, pw.n)
		}
	})
	t.Run("partWriter should fail on write", func(t *testing.T) {
		pw := &partWriter{w: failWriter{}}
		if _, err := pw.Write([]byte("test")); err == nil {
			t.Fatal("partWriter was supposed to fail on write")
		}
	})
	t.Run("partWriter should fail on previous error", func(t *testing.T) {
		buffer := bytes.NewBuffer(nil)
		pw := &partWriter{w: buffer}
		if _, err := pw.Write([]byte("test")); err != nil {
			t.Errorf("partWriter failed to write: %s", err)
		}
		pw.err = errors.New("intentionally failed")
		if _, err := pw.Write([]byte("test2")); err == nil {
			t.Fatal("partWriter was supposed to fail on second write")
		}
		if buffer.String() != "test" {
			t.Errorf("partWriter was not supposed to write after an error, got: %s", buffer.String())
		}
	})
	t.Run("writeString stops on previous error", func(t *testing.T) {
		pw := &partWriter{w: failWriter{}}
		pw.writeString("test")
		if pw.err == nil {
			t.Fatal("writeString was supposed to fail")
		}
		pw.w = bytes.NewBuffer(nil)
		pw.writeString("test")
		if pw.n != 0 {
			t.Errorf("writeString was not supposed to write after an error")
		}
	})
}

func TestPartWriter_writeHeader(t *testing.T) {
	tests := []struct {
		name  string
		field HeaderField
		want  string
	}{
		{
			"short header", HeaderField{HeaderContentTransferEnc, "base64"},
			"Content-Transfer-Encoding: base64\r\n",
		},
		{
			"short header with parameter", HeaderField{HeaderContentType, "text/plain; charset=UTF-8"},
			"Content-Type: text/plain; charset=UTF-8\r\n",
		},
		{
			"long parameter is folded",
			HeaderField{HeaderContentType, "multipart/alternative; boundary=\"" + strings.Repeat("b", 40) + "\""},
			"Content-Type: multipart/alternative;\r\n boundary=\"" + strings.Repeat("b", 40) + "\"\r\n",
		},
		{
			"folding only where needed",
			HeaderField{HeaderContentType, "text/plain; charset=UTF-8; boundary=\"" + strings.Repeat("b", 40) + "\""},
			"Content-Type: text/plain; charset=UTF-8;\r\n boundary=\"" + strings.Repeat("b", 40) + "\"\r\n",
		},
		{
			"long value without parameters is kept",
			HeaderField{HeaderContentDescription, strings.Repeat("d", 80)},
			"Content-Description: " + strings.Repeat("d", 80) + "\r\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buffer := bytes.NewBuffer(nil)
			pw := &partWriter{w: buffer}
			pw.writeHeader(tt.field)
			if pw.err != nil {
				t.Fatalf("writeHeader failed: %s", pw.err)
			}
			if buffer.String() != tt.want {
				t.Errorf("writeHeader failed. Expected: %q, got: %q", tt.want, buffer.String())
			}
			if pw.n != int64(len(tt.want)) {
				t.Errorf("writeHeader counted wrong number of bytes. Expected: %d, got: %d", len(tt.want), pw.n)
			}
		})
	}
}

func TestPartWriter_writeBody(t *testing.T) {
	t.Run("body is copied", func(t *testing.T) {
		buffer := bytes.NewBuffer(nil)
		pw := &partWriter{w: buffer}
		pw.writeBody(strings.NewReader("body content"))
		if pw.err != nil {
			t.Fatalf("writeBody failed: %s", pw.err)
		}
		if buffer.String() != "body content" || pw.n != 12 {
			t.Errorf("writeBody failed. Expected: %q, got: %q (%d bytes)", "body content", buffer.String(), pw.n)
		}
	})
	t.Run("body is skipped on previous error", func(t *testing.T) {
		buffer := bytes.NewBuffer(nil)
		pw := &partWriter{w: buffer, err: errors.New("intentionally failed")}
		pw.writeBody(strings.NewReader("body content"))
		if buffer.Len() != 0 {
			t.Errorf("writeBody was not supposed to write after an error")
		}
	})
	t.Run("failing writer", func(t *testing.T) {
		pw := &partWriter{w: failWriter{}}
		pw.writeBody(strings.NewReader("body content"))
		if pw.err == nil {
			t.Error("writeBody was supposed to fail")
		}
	})
}
