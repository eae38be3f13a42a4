// util/generic.go
// Copyright(c) 2024-2026 rwyperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import "github.com/brunoga/deep"

// Select returns a or b depending on the provided condition; it is a
// substitute for the ternary operator.
func Select[T any](cond bool, a T, b T) T {
	if cond {
		return a
	}
	return b
}

// Snapshot returns an independent deep copy of the given value. Calculation
// inputs (conditions, runways, NOTAMs) must be snapshotted before they are
// handed to the engine so that a live store mutating the originals can never
// change a value mid-calculation.
func Snapshot[T any](v T) T {
	return deep.MustCopy(v)
}

// MapSlice returns the slice that is obtained by applying the provided
// function to all of the elements of the given slice.
func MapSlice[F, T any](from []F, xform func(F) T) []T {
	var to []T
	for _, item := range from {
		to = append(to, xform(item))
	}
	return to
}
