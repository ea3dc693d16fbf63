package dearomstorage

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// writePackedShort writes v using the source toolkit's packed-short
// encoding: one byte if v < 255, otherwise a 0xFF marker byte followed by a
// little-endian uint16.
func writePackedShort(w io.Writer, v int) error {
	if v < 0 || v > 0xFFFF {
		return errors.Errorf("dearomstorage: value %d out of packed-short range", v)
	}
	if v < 0xFF {
		_, err := w.Write([]byte{byte(v)})
		return err
	}
	buf := make([]byte, 3)
	buf[0] = 0xFF
	binary.LittleEndian.PutUint16(buf[1:], uint16(v))
	_, err := w.Write(buf)
	return err
}

func readPackedShort(r io.Reader) (int, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, errors.Wrap(ErrTruncated, err.Error())
	}
	if b[0] != 0xFF {
		return int(b[0]), nil
	}
	var rest [2]byte
	if _, err := io.ReadFull(r, rest[:]); err != nil {
		return 0, errors.Wrap(ErrTruncated, err.Error())
	}
	return int(binary.LittleEndian.Uint16(rest[:])), nil
}

// rowWidth returns the byte width of a bit-packed row of nbits bits.
func rowWidth(nbits int) int {
	return (nbits + 7) / 8
}

// SaveBinary encodes the storage's bit-exact external wire format: a mode
// byte, a packed-short group count G, then — depending on mode — either
// the per-group dearomatization-assignment row counts or the per-group
// heteroatom-state row counts, followed by a single packed-short total
// byte count and the raw concatenated row bytes.
//
// Per-group bond/heteroatom index lists are deliberately absent from the
// stream: row width is recovered on load from the target storage's own
// group structure, which the caller must have already populated (e.g. via
// aromgroups.Groups.ConstructGroups on the same molecule) before calling
// LoadBinary.
func (s *Storage) SaveBinary(w io.Writer) error {
	if _, err := w.Write([]byte{byte(s.mode)}); err != nil {
		return err
	}
	if err := writePackedShort(w, len(s.groupBonds)); err != nil {
		return err
	}

	if s.mode == SaveJustHeteroatoms {
		return writeRows(w, s.heteroStCount, s.heteroStates)
	}
	return writeRows(w, s.assignCount, s.assignments)
}

// writeRows writes counts[g] for every group, then a packed-short total
// byte count, then the raw concatenation of rows.
func writeRows(w io.Writer, counts []int, rows [][]byte) error {
	for _, c := range counts {
		if err := writePackedShort(w, c); err != nil {
			return err
		}
	}
	total := 0
	for _, row := range rows {
		total += len(row)
	}
	if err := writePackedShort(w, total); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// LoadBinary decodes r (as produced by SaveBinary) and replaces the
// storage's mode and dearomatization/heteroatom-state assignments. The
// storage's group structure — GroupsCount, GroupBonds, GroupHeteroAtoms —
// must already match the molecule the stream was saved against (set via
// SetGroupsCount/SetGroup or aromgroups.Groups.ConstructGroups) before
// calling LoadBinary, since row width is not itself part of the stream.
func (s *Storage) LoadBinary(r io.Reader) error {
	var modeByte [1]byte
	if _, err := io.ReadFull(r, modeByte[:]); err != nil {
		return errors.Wrap(ErrTruncated, err.Error())
	}
	mode := Mode(modeByte[0])
	if mode < NoDearomatizations || mode > SaveJustHeteroatoms {
		return ErrBadMode
	}

	groupCount, err := readPackedShort(r)
	if err != nil {
		return err
	}
	if groupCount != len(s.groupBonds) {
		return errors.Wrapf(ErrGroupCountMismatch, "stream has %d groups, storage has %d", groupCount, len(s.groupBonds))
	}

	counts := make([]int, groupCount)
	for g := 0; g < groupCount; g++ {
		c, err := readPackedShort(r)
		if err != nil {
			return err
		}
		counts[g] = c
	}

	total, err := readPackedShort(r)
	if err != nil {
		return err
	}
	buf := make([]byte, total)
	if _, err := io.ReadFull(r, buf); err != nil {
		return errors.Wrap(ErrTruncated, err.Error())
	}

	s.mode = mode
	if mode == SaveJustHeteroatoms {
		s.ClearHeteroAtomsState()
		return s.loadRows(buf, counts, s.groupHetero, s.AddGroupHeteroAtomsState)
	}
	s.ClearBondsState()
	return s.loadRows(buf, counts, s.groupBonds, s.AddGroupDearomatization)
}

// loadRows slices buf into per-group rows (row width taken from widthOf,
// one entry per group) and replays them through add in group order.
func (s *Storage) loadRows(buf []byte, counts []int, widthOf [][]int, add func(group int, bits []byte) error) error {
	offset := 0
	for g, c := range counts {
		width := rowWidth(len(widthOf[g]))
		for i := 0; i < c; i++ {
			if offset+width > len(buf) {
				return errors.Wrap(ErrTruncated, "dearomstorage: payload shorter than declared row count")
			}
			if err := add(g, buf[offset:offset+width]); err != nil {
				return err
			}
			offset += width
		}
	}
	if offset != len(buf) {
		return errors.New("dearomstorage: payload length does not match declared row widths")
	}
	return nil
}

// Bytes encodes the storage via SaveBinary into a fresh byte slice.
func (s *Storage) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.SaveBinary(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
