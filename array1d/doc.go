// Package array1d provides the dense, contiguous, resizable buffer shared by
// every sparse-matrix format and by the BiCGstab workspace.
//
// The array1d package provides:
//
//   - Array, a one-dimensional []float64 buffer tagged with a space.Space.
//   - Construction (empty, sized, from an existing slice), Resize, Swap, and
//     bounds-checked At/Set.
//   - CopyTo, the single cross-space transfer point every format's copy
//     constructor defers to.
//
// Array never aliases: Resize and the copy constructors always produce an
// independent backing slice. Allocation failure is fatal and is not
// represented as an error return — Go's allocator already panics on OOM,
// and masking that as a recoverable error would misrepresent the
// "AllocationFailure — fatal; propagate" policy.
package array1d
