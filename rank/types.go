package rank

import "context"

// Artist is the "one" side of the artist/track relationship.
type Artist struct {
	// ID uniquely identifies the artist across all backends.
	ID string `db:"artist_id" bson:"artist_id"`

	// Name is the artist's display name.
	Name string `db:"artist_name" bson:"artist_name"`
}

// Track is the "many" side: a single track referencing its artist by ID.
type Track struct {
	// ID uniquely identifies the track.
	ID string `db:"track_id" bson:"track_id"`

	// ArtistID references the owning artist.
	ArtistID string `db:"artist_id" bson:"artist_id"`

	// Title is the track's display title.
	Title string `db:"track_title" bson:"track_title"`
}

// Result is one row of a ranking. Every backend adapter produces results
// with these exact field names so output is comparable across backends.
type Result struct {
	// ArtistID is the ranked artist's ID.
	ArtistID string `db:"artist_id" bson:"artist_id"`

	// ArtistName is the ranked artist's display name.
	ArtistName string `db:"artist_name" bson:"artist_name"`

	// TotalTracks is the number of tracks resolved to this artist.
	TotalTracks int64 `db:"total_tracks" bson:"total_tracks"`
}

// Backend computes artist rankings against a specific data source.
// Implementations issue read-only queries and honor the ordering and
// tie-break contract described in the package documentation.
type Backend interface {
	// TopArtists returns the top-N artists by track count.
	TopArtists(ctx context.Context, opts Options) ([]Result, error)
}
