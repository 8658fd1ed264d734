// Package space declares the memory-space tags that classify every buffer
// and container in this module as host-resident or device-resident.
//
// The space package provides:
//
//   - Space, a closed two-valued tag (Host, Device) carried at runtime by
//     every array and sparse-matrix container.
//   - Allocator, the narrow binding between a Space and the buffer it hands
//     back; Host and Device ship the only two implementations.
//
// Float64 buffers are allocated and transferred through Allocator.Alloc and
// Allocator.Transfer, letting the tag pick the behavior. This keeps the
// allocator dispatch table in one place instead of scattered type switches.
// Kernel entry points still compare operands' Space values: the SpMV
// functions reject operands that are not co-resident, and krylov.Bicgstab
// picks sparse.SpMVDevice for Device operands.
package space
