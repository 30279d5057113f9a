// SPDX-FileCopyrightText: 2022-2023 The go-mail Authors
//
// SPDX-License-Identifier: MIT

// Package mimepart encodes a single MIME body part: it assembles the part's
// Content-* headers and transfers its content in one of the MIME transfer
// encodings (7bit, 8bit, base64 or quoted-printable), either fully buffered
// or as a lazily encoded stream.
package mimepart

// VERSION is the version of the mimepart package
const VERSION = "0.1.0"
