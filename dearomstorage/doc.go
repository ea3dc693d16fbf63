// Package dearomstorage is an append-only, bit-packed store of
// dearomatization assignments, one slot per aromatic group.
//
// Its data layout is per-group index lists plus flat state-row lists
// partitioned per group by an offset+count pair, with SaveBinary/LoadBinary using a packed-short
// varint encoding (1 byte for values below 255, otherwise a 0xFF marker
// followed by a little-endian uint16) — written with encoding/binary
// rather than hand-rolled byte shuffling.
//
// The wire format is bit-exact: mode byte, packed-short group count, then
// per-group row counts followed by one packed-short total byte count and
// the raw concatenated rows. Bond/heteroatom index lists are not part of
// the stream — LoadBinary recovers row width from the target storage's
// own group structure, which the caller must populate first.
package dearomstorage
