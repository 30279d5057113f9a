// SPDX-FileCopyrightText: 2022-2023 The go-mail Authors
//
// SPDX-License-Identifier: MIT

package mimepart

import (
	"crypto/rand"
	"encoding/binary"
	"strings"
)

// Range of characters for the boundary generation. All of them are valid RFC 2046 bchars.
const boundaryChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890"

// Bitmask sizes for the string generator (based on 62 chars total)
const (
	letterIdxBits = 6                    // 6 bits to represent a letter index
	letterIdxMask = 1<<letterIdxBits - 1 // All 1-bits, as many as letterIdxBits
	letterIdxMax  = 63 / letterIdxBits   // # of letter indices fitting in 63 bits
)

const (
	// boundaryPrefix starts every generated boundary
	boundaryPrefix = "=_part_"

	// boundaryRandomLength is the number of random characters of a generated boundary
	boundaryRandomLength = 32
)

// NewBoundary returns a new random multipart boundary, which can be used as Boundary of a Part
// with a multipart content type.
//
// The boundary starts with "=_", a sequence that never occurs in base64 or quoted-printable
// encoded content.
func NewBoundary() (string, error) {
	random, err := randomStringSecure(boundaryRandomLength)
	if err != nil {
		return "", err
	}
	return boundaryPrefix + random, nil
}

// randomStringSecure returns a random string of length characters. This method uses the
// crypto/random package and therefore is cryptographically secure
func randomStringSecure(length int) (string, error) {
	randString := strings.Builder{}
	randString.Grow(length)
	charRangeLength := len(boundaryChars)

	randPool := make([]byte, 8)
	if _, err := rand.Read(randPool); err != nil {
		return randString.String(), err
	}
	for idx, char, rest := length-1, binary.BigEndian.Uint64(randPool), letterIdxMax; idx >= 0; {
		if rest == 0 {
			if _, err := rand.Read(randPool); err != nil {
				return randString.String(), err
			}
			char, rest = binary.BigEndian.Uint64(randPool), letterIdxMax
		}
		if i := int(char & letterIdxMask); i < charRangeLength {
			randString.WriteByte(boundaryChars[i])
			idx--
		}
		char >>= letterIdxBits
		rest--
	}

	return randString.String(), nil
}
