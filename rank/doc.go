// Package rank computes "top artists by track count" rankings with an
// explicit, backend-independent contract.
//
// Chorus answers one analytical question - which artists have the most
// tracks - against differently shaped data sources. This package holds the
// shared contract: the input and result types, the ranking options, and a
// pure in-memory implementation that every backend adapter is checked
// against. The adapters live in sibling packages:
//
//   - [github.com/jacentio/chorus/relational] - PostgreSQL (join + GROUP BY)
//   - [github.com/jacentio/chorus/document]   - MongoDB (aggregation pipelines)
//   - [github.com/jacentio/chorus/dynamo]     - DynamoDB (scan + indexed counts)
//
// # Ranking Contract
//
// Results are ordered by track count descending, then by artist ID
// ascending. Ties at the top-N boundary are resolved by a named policy
// rather than whatever order the underlying engine happens to produce:
//
//   - [SingleWinner] (default) keeps exactly one row per rank position,
//     preferring the smaller artist ID.
//   - [AllWinners] extends the result to every artist tied with the Nth
//     count.
//
// Artists with zero tracks are part of the ranking under [ZeroInclusive]
// (the default); [JoinExclusive] drops them, matching the behavior of an
// inner join. An empty artist set yields an empty result, never an error.
//
// # Errors
//
// The package defines domain-specific errors:
//
//   - [ErrDanglingTrack]     - a track references an artist that does not exist
//   - [ErrArtistNotFound]    - a named artist lookup matched nothing
//   - [ErrMalformedDocument] - a backend document does not match the expected shape
//   - [ErrUnavailable]       - the underlying data source cannot be reached
//
// Dangling references fail fast under [Options.Strict]; in lenient mode the
// offending track is skipped and reported through [Options.OnSkip].
package rank
