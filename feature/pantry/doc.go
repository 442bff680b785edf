// Package pantry implements barcode-driven inventory reconciliation.
//
// A scan event produces a raw code; NormalizeCode canonicalizes it (EAN-13
// with a leading zero collapses to its UPC-A equivalent); the Service then
// loads the persisted inventory, increments an existing record or builds a
// new one from the product lookup, and persists the full inventory back.
// Recipe application follows the same load, mutate, persist pattern over a
// list of ingredient deductions, pruning records that reach zero.
//
// # Components
//
//   - NormalizeCode: canonical key derivation for UPC/EAN codes.
//   - Store: the inventory blob boundary, with file and S3/MinIO backends.
//   - Service: scan preview/commit, recipe deduction, reset, list, edits.
//   - Handler: the /pantry HTTP surface.
//
// # Persistence Semantics
//
// Every mutation persists the entire inventory; there are no partial writes.
// Read failures (missing or corrupt blob) recover to an empty inventory,
// while write failures surface to the caller with in-memory state intact.
package pantry
