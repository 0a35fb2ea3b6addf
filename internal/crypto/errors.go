// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrInvalidHash is returned when an encoded hash cannot be parsed.
	ErrInvalidHash = errors.New("invalid encoded hash")
	// ErrIncompatibleVersion is returned when an encoded hash was produced
	// by a different argon2 version.
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
)
