// Package document answers artist rankings against MongoDB collections in
// two shapes: a flat tracks collection where each document embeds its artist
// identity, and a nested artists collection where albums and their tracks
// are embedded two levels deep.
//
// Both shapes produce results with the same field names as the other
// backends (artist_id, artist_name, total_tracks); that uniformity is the
// adapter layer's reason to exist.
//
// The flat shape has no artists collection, so artists with zero tracks are
// unrepresentable there: TopTrackDocs behaves join-exclusively regardless of
// the configured rank.CountMode. Dangling references are likewise undefined
// for this backend - the flat shape carries the artist identity inside each
// track, and the nested shape cannot express a track without an artist - so
// rank.Options.Strict has nothing to check and is ignored.
package document

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jacentio/chorus/rank"
)

// Config names the collections holding the two document shapes.
type Config struct {
	// TrackCollection holds flat TrackDoc documents.
	// Default: "tracks"
	TrackCollection string

	// ArtistCollection holds nested ArtistDoc documents.
	// Default: "artists"
	ArtistCollection string
}

// DefaultConfig returns the collection names used by the reference dataset.
func DefaultConfig() Config {
	return Config{
		TrackCollection:  "tracks",
		ArtistCollection: "artists",
	}
}

// validate ensures config values are within acceptable bounds.
func (c *Config) validate() {
	if c.TrackCollection == "" {
		c.TrackCollection = "tracks"
	}
	if c.ArtistCollection == "" {
		c.ArtistCollection = "artists"
	}
}

// Adapter computes artist rankings with read-only aggregation pipelines.
type Adapter struct {
	db     *mongo.Database
	config Config
}

// New creates a new Adapter over an open database handle.
func New(db *mongo.Database, config Config) *Adapter {
	config.validate()
	return &Adapter{
		db:     db,
		config: config,
	}
}

// TopTrackDocs ranks artists by grouping the flat track collection on the
// embedded artist identity. See the package documentation for this shape's
// join-exclusive behavior.
func (a *Adapter) TopTrackDocs(ctx context.Context, opts rank.Options) ([]rank.Result, error) {
	return a.aggregate(ctx, a.config.TrackCollection, trackDocsPipeline(opts), opts)
}

// TopEmbedded ranks artists by flattening the nested artist collection
// (unwind albums, then each album's tracks) and counting leaf tracks.
func (a *Adapter) TopEmbedded(ctx context.Context, opts rank.Options) ([]rank.Result, error) {
	return a.aggregate(ctx, a.config.ArtistCollection, embeddedPipeline(opts, ""), opts)
}

// ArtistTrackCount counts the tracks of one named artist in the nested
// shape, matching before unwinding so only that artist's document is
// flattened. Returns rank.ErrArtistNotFound if no artist has that name.
func (a *Adapter) ArtistTrackCount(ctx context.Context, artistName string) (rank.Result, error) {
	opts := rank.DefaultOptions()
	results, err := a.aggregate(ctx, a.config.ArtistCollection, embeddedPipeline(opts, artistName), opts)
	if err != nil {
		return rank.Result{}, err
	}
	if len(results) == 0 {
		return rank.Result{}, fmt.Errorf("%w: %q", rank.ErrArtistNotFound, artistName)
	}
	return results[0], nil
}

func (a *Adapter) aggregate(ctx context.Context, collection string, pipeline mongo.Pipeline, opts rank.Options) ([]rank.Result, error) {
	cursor, err := a.db.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", rank.ErrUnavailable, err)
	}

	var results []rank.Result
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("%w: %v", rank.ErrMalformedDocument, err)
	}

	// The AllWinners boundary is trimmed here instead of in the pipeline.
	if opts.Ties == rank.AllWinners {
		results = rank.TakeTop(results, opts.N, opts.Ties)
	}
	return results, nil
}

// TrackDocsBackend adapts TopTrackDocs to rank.Backend.
type TrackDocsBackend struct{ *Adapter }

// TopArtists implements rank.Backend.
func (b TrackDocsBackend) TopArtists(ctx context.Context, opts rank.Options) ([]rank.Result, error) {
	return b.TopTrackDocs(ctx, opts)
}

// EmbeddedBackend adapts TopEmbedded to rank.Backend.
type EmbeddedBackend struct{ *Adapter }

// TopArtists implements rank.Backend.
func (b EmbeddedBackend) TopArtists(ctx context.Context, opts rank.Options) ([]rank.Result, error) {
	return b.TopEmbedded(ctx, opts)
}
