// Package eliasfano implements a quasi-succinct encoding of a strictly
// increasing sequence of positive 32-bit integers — the archetypal
// use case being the document-identifier posting list of an inverted
// index — using the Elias-Fano representation.
//
// Encode and Decode operate entirely on caller-supplied buffers: neither
// allocates, blocks, or retains state across calls, so the same wire
// buffer can be decoded concurrently by any number of callers once
// written. BuildDecodingTables builds the process-wide lookup tables
// Decode relies on; it is idempotent and is called automatically by
// Decode, so most callers never need to invoke it directly.
package eliasfano
