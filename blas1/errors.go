// Package blas1: sentinel error set.
package blas1

import "errors"

var (
	// ErrShapeMismatch indicates operand arrays have different lengths.
	ErrShapeMismatch = errors.New("blas1: shape mismatch")

	// ErrMemorySpaceMismatch indicates operands are not co-resident.
	ErrMemorySpaceMismatch = errors.New("blas1: memory space mismatch")

	// ErrAliasing indicates two operands that must be distinct share a
	// backing buffer.
	ErrAliasing = errors.New("blas1: operands must not alias")
)
