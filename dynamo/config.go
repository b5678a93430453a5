package dynamo

// Config holds configuration for the Adapter.
type Config struct {
	// ArtistsTable is the table holding one item per artist, keyed by
	// artist_id and carrying artist_name.
	// Default: "artists"
	ArtistsTable string

	// TracksTable is the table holding one item per track.
	// Default: "tracks"
	TracksTable string

	// ArtistIndex is the GSI on TracksTable whose partition key is
	// artist_id. Counts are read from this index with Select COUNT, so
	// track items are never fetched.
	// Default: "artist_id-index"
	ArtistIndex string

	// Parallelism bounds the number of concurrent count queries.
	// Default: 4
	// Max: 64
	Parallelism int
}

// DefaultConfig returns sensible defaults for small datasets.
func DefaultConfig() Config {
	return Config{
		ArtistsTable: "artists",
		TracksTable:  "tracks",
		ArtistIndex:  "artist_id-index",
		Parallelism:  4,
	}
}

// validate ensures config values are within acceptable bounds.
func (c *Config) validate() {
	if c.ArtistsTable == "" {
		c.ArtistsTable = "artists"
	}
	if c.TracksTable == "" {
		c.TracksTable = "tracks"
	}
	if c.ArtistIndex == "" {
		c.ArtistIndex = "artist_id-index"
	}
	if c.Parallelism < 1 {
		c.Parallelism = 4
	}
	if c.Parallelism > 64 {
		c.Parallelism = 64
	}
}
