// SPDX-License-Identifier: MIT
// Package: feynman/fixtures
//
// errors.go: sentinel errors for the fixtures package.

package fixtures

import "errors"

// ErrUnknownFixture indicates that Lookup was given a name not in the catalogue.
var ErrUnknownFixture = errors.New("fixtures: unknown fixture")
