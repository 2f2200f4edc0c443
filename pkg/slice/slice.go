// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slice holds generic folds over slices, such as summing order line totals.
package slice

// Reduce folds input left to right, starting from initial.
// An empty or nil input returns initial unchanged.
func Reduce[T, A any](input []T, initial A, fold func(acc A, item T) A) A {
	acc := initial
	for _, item := range input {
		acc = fold(acc, item)
	}
	return acc
}
