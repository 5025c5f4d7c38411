// Package radix provides an LSD radix sort for fixed-width keys with a
// satellite payload array permuted in lock-step.
//
// # Algorithm
//
// Every sort runs in three stages:
//   - One counting traversal that fills a histogram row per digit position
//   - A row-wise exclusive prefix sum turning counts into write cursors
//   - One scatter pass per digit, least-significant first, alternating
//     between the primary and scratch buffers
//
// Float keys are sorted through an order-preserving bit transform
// (FloatFlip). The transform is fused into the first scatter pass and its
// inverse into the last, so float sorting costs no extra traversal.
//
// # Buffers
//
// The caller owns four equal-length slices: keys and payloads, each with a
// primary and a scratch buffer. The engine never allocates element storage.
// Each pass swaps the roles of the two buffers, so the returned pass count
// tells where the result is:
//
//	passes := radix.Sort11Uint32(keys, keysTmp, vals, valsTmp)
//	keys, vals = radix.Result(passes, keys, keysTmp, vals, valsTmp)
//
// Even pass counts leave the result in the primary buffers, odd ones in
// the scratch buffers.
//
// # Supported Keys
//
//   - uint32, uint64 (and named types based on them) via Sort
//   - float32 via SortFloat32
//
// Digit widths of 8 and 11 bits have dedicated entry points. Any width
// from 1 to MaxRadixBits is accepted by the generic functions.
//
// # Errors
//
// Precondition violations (mismatched buffer lengths, unsupported digit
// widths) are programming errors and panic before any buffer is touched.
package radix
