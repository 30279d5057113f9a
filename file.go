// SPDX-FileCopyrightText: 2022-2023 The go-mail Authors
//
// SPDX-License-Identifier: MIT

package mimepart

import (
	"mime"
	"os"
	"path/filepath"
)

// NewPartFromFile opens the named file and returns a Part that streams its content.
//
// The Part is set up as an attachment: the Filename is the base name of the file, the Type is
// guessed from the file extension (with "application/octet-stream" as fallback), the Disposition
// is "attachment" and the Encoding is base64. A charset parameter that is part of the guessed
// type is kept as Charset. The given PartOption functions are applied afterwards and can
// override any of these defaults.
//
// The Part owns the opened file. It is closed by Part.Close.
//
// Parameters:
//   - name: The path of the file.
//   - opts: Optional PartOption functions.
//
// Returns:
//   - A new Part for the file.
//   - An IOError if the file could not be opened.
func NewPartFromFile(name string, opts ...PartOption) (*Part, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, newIOError("open", err)
	}

	contentType, charset := TypeAppOctetStream, Charset("")
	if guessed := mime.TypeByExtension(filepath.Ext(name)); guessed != "" {
		if mediaType, params, err := mime.ParseMediaType(guessed); err == nil {
			contentType = ContentType(mediaType)
			charset = Charset(params["charset"])
		}
	}

	defaults := []PartOption{
		WithPartContentType(contentType),
		WithPartCharset(charset),
		WithPartEncoding(EncodingB64),
		WithPartDisposition(DispositionAttachment),
		WithPartFilename(filepath.Base(name)),
	}
	return NewPartFromReader(file, append(defaults, opts...)...), nil
}
