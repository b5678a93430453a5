package rank

import "errors"

var (
	// ErrDanglingTrack is returned in strict mode when a track references
	// an artist that does not exist in the supplied artist set.
	ErrDanglingTrack = errors.New("chorus: track references unknown artist")

	// ErrArtistNotFound is returned when a lookup for a named artist
	// matches nothing. An empty ranking is not an error; a missing artist is.
	ErrArtistNotFound = errors.New("chorus: artist not found")

	// ErrMalformedDocument is returned when a backend document does not
	// match the expected shape.
	ErrMalformedDocument = errors.New("chorus: malformed document shape")

	// ErrUnavailable is returned (wrapped) when the underlying data source
	// cannot be reached. Chorus never retries; retry policy belongs to the
	// caller.
	ErrUnavailable = errors.New("chorus: data source unavailable")
)
