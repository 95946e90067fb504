// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice complements the standard [slices] package with the generic
conversions catalog requests need between decoded and stored lists.
*/
package slice

// Map maps a slice of type T to a slice of type U using the provided transformation function.
func Map[T any, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}

	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}

	return result
}

// Deref copies the values behind a list of pointers. Nil elements are skipped.
//
// Request lists are decoded as []*T so that null elements can be reported;
// once validated they are stored as plain values.
func Deref[T any](input []*T) []T {
	result := make([]T, 0, len(input))
	for _, v := range input {
		if v != nil {
			result = append(result, *v)
		}
	}
	return result
}
