package document

import "time"

// ArtistRef is the artist identity denormalized into a flat track document.
type ArtistRef struct {
	ID   string `bson:"artist_id"`
	Name string `bson:"artist_name"`
}

// AlbumRef is the album identity denormalized into a flat track document.
// ReleaseDate is nil for singles collected under a synthetic "Singles" album.
type AlbumRef struct {
	ID          string     `bson:"album_id"`
	Name        string     `bson:"album_name"`
	ReleaseDate *time.Time `bson:"release_date"`
}

// TrackDoc is the flat reference shape: one document per track carrying a
// denormalized copy of its artist and album identity, so no join is needed.
type TrackDoc struct {
	ID              string    `bson:"_id"`
	Title           string    `bson:"track_title"`
	DurationSeconds int       `bson:"duration_seconds"`
	Explicit        bool      `bson:"is_explicit"`
	Genre           string    `bson:"genre"`
	Rating          float64   `bson:"popularity_rating"`
	Streams         int64     `bson:"total_streams"`
	Artist          ArtistRef `bson:"artist"`
	Album           AlbumRef  `bson:"album"`
}

// EmbeddedTrack is a track nested inside an album of an ArtistDoc.
type EmbeddedTrack struct {
	ID              string  `bson:"track_id"`
	Title           string  `bson:"track_title"`
	DurationSeconds int     `bson:"duration_seconds"`
	Explicit        bool    `bson:"is_explicit"`
	Genre           string  `bson:"genre"`
	Rating          float64 `bson:"popularity_rating"`
	Streams         int64   `bson:"total_streams"`
}

// EmbeddedAlbum is an album nested inside an ArtistDoc.
type EmbeddedAlbum struct {
	ID          string          `bson:"album_id"`
	Name        string          `bson:"album_name"`
	ReleaseDate *time.Time      `bson:"release_date"`
	Tracks      []EmbeddedTrack `bson:"tracks"`
}

// ArtistDoc is the nested embedding shape: one document per artist with two
// levels of nesting (artist -> albums -> tracks). The artist ID is the
// document key.
type ArtistDoc struct {
	ID     string          `bson:"_id"`
	Name   string          `bson:"artist_name"`
	Albums []EmbeddedAlbum `bson:"albums"`
}
