// SPDX-License-Identifier: MIT

package dfs

import "cmp"

// IndexOf returns the first index of val in s, or -1.
func IndexOf[T comparable](s []T, val T) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}
	return -1
}

// Compare lexicographically compares a and b; a shorter prefix sorts first.
func Compare[T cmp.Ordered](a, b []T) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

// MinimalRotation returns the lexicographically smallest rotation of s as a
// new slice, using Booth's algorithm in O(n).
func MinimalRotation[T cmp.Ordered](s []T) []T {
	n := len(s)
	if n == 0 {
		return nil
	}
	doubled := make([]T, 0, 2*n)
	doubled = append(append(doubled, s...), s...)
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}
	return append([]T(nil), doubled[k:k+n]...)
}
