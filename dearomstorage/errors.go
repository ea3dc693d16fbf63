package dearomstorage

import "errors"

var (
	// ErrGroupOutOfRange is returned when a group index is outside
	// [0, GroupsCount()).
	ErrGroupOutOfRange = errors.New("dearomstorage: group index out of range")
	// ErrOutOfOrder is returned by AddGroupDearomatization/AddGroupHeteroAtomsState
	// when an append targets a group lower than the one currently open at the
	// tail of the flat arrays — this storage is append-only, matching
	// DearomatizationsStorage::addGroupDearomatization's offset/count checks.
	ErrOutOfOrder = errors.New("dearomstorage: groups must be appended in order")
	// ErrTruncated is returned by LoadBinary when the encoded stream ends
	// before the header-declared size is satisfied.
	ErrTruncated = errors.New("dearomstorage: truncated binary stream")
	// ErrBadMode is returned by LoadBinary for an unrecognized Mode byte.
	ErrBadMode = errors.New("dearomstorage: unrecognized mode byte")
	// ErrGroupCountMismatch is returned by LoadBinary when the stream's
	// group count does not match the storage's own GroupsCount — row width
	// is not itself encoded in the stream, so the storage's group structure
	// must already agree with the molecule the stream was saved against.
	ErrGroupCountMismatch = errors.New("dearomstorage: stream group count does not match storage group structure")
)
