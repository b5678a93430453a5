package rank

// TiePolicy selects how artists tied at the top-N boundary are handled.
type TiePolicy int

const (
	// SingleWinner keeps exactly one artist per rank position. Artists with
	// equal counts are ordered by ascending artist ID, so the result is
	// deterministic regardless of backend.
	SingleWinner TiePolicy = iota

	// AllWinners extends the result past N to include every artist tied
	// with the Nth count.
	AllWinners
)

// CountMode selects whether artists with zero tracks appear in the ranking.
type CountMode int

const (
	// ZeroInclusive keeps artists with no tracks, with TotalTracks 0.
	// Equivalent to an outer join in the relational form.
	ZeroInclusive CountMode = iota

	// JoinExclusive drops artists with no tracks, matching the behavior of
	// an inner join.
	JoinExclusive
)

// Options control ranking behavior. The zero value is lenient; use
// DefaultOptions for the strict, single-winner defaults.
type Options struct {
	// N is the number of rank positions to return.
	// Default: 1
	N int

	// Ties selects the tie policy at the top-N boundary.
	// Default: SingleWinner
	Ties TiePolicy

	// Mode selects zero-count handling.
	// Default: ZeroInclusive
	Mode CountMode

	// Strict fails with ErrDanglingTrack when a track references an
	// unknown artist. When false the track is skipped and reported
	// through OnSkip.
	Strict bool

	// OnSkip is called for each track skipped in lenient mode. May be nil.
	OnSkip func(trackID, artistID string)
}

// DefaultOptions returns the defaults: top-1, single winner, zero-inclusive,
// strict dangling-reference handling.
func DefaultOptions() Options {
	return Options{
		N:      1,
		Ties:   SingleWinner,
		Mode:   ZeroInclusive,
		Strict: true,
	}
}

// validate ensures option values are within acceptable bounds.
func (o *Options) validate() {
	if o.N < 1 {
		o.N = 1
	}
}
