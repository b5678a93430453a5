// Package musicdata generates deterministic synthetic music datasets for
// tests. The same seed always yields the same artists, albums, and tracks,
// so every backend can be loaded with identical data and compared.
package musicdata

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/jacentio/chorus/rank"
)

var genres = []string{
	"Pop", "Rock", "Hip Hop", "R&B", "Electronic", "Country", "Jazz",
	"Classical", "Indie", "Folk", "Reggae", "Metal",
}

var (
	firstNames = []string{
		"Elias", "Maya", "Theo", "Alma", "Dmitri", "Sana", "Rafael",
		"Ingrid", "Kofi", "Lena", "Otis", "Priya",
	}
	lastNames = []string{
		"Mercer", "Okafor", "Lindqvist", "Marsh", "Vela", "Tanaka",
		"Duarte", "Novak", "Reyes", "Whitfield", "Iyer", "Calloway",
	}
	titleWords = []string{
		"Midnight", "Harbor", "Echo", "Glass", "Winter", "Neon",
		"Satellite", "Ember", "Driftwood", "Static", "Meridian", "Hollow",
	}
)

// Artist is a generated artist.
type Artist struct {
	ID   string
	Name string
}

// Album is a generated album. ReleaseDate is nil for the synthetic
// "Singles" album that collects an artist's single releases.
type Album struct {
	ID          string
	ArtistID    string
	Name        string
	ReleaseDate *time.Time
}

// Track is a generated track with the full field set of the music schema.
type Track struct {
	ID              string
	AlbumID         string
	ArtistID        string
	Title           string
	DurationSeconds int
	Explicit        bool
	Genre           string
	Rating          float64
	Streams         int64
	Single          bool
}

// Dataset is a coherent set of artists, albums, and tracks. Every track
// references an existing album and artist; every album references an
// existing artist.
type Dataset struct {
	Artists []Artist
	Albums  []Album
	Tracks  []Track
}

// Config controls dataset generation.
type Config struct {
	// Artists is the number of artists to generate.
	// Default: 8
	Artists int

	// AlbumsPerArtist is the maximum number of proper albums per artist
	// (each artist gets at least one).
	// Default: 3
	AlbumsPerArtist int

	// TracksPerAlbum is the maximum number of tracks per album (each album
	// gets at least one).
	// Default: 6
	TracksPerAlbum int

	// SingleRate is the probability that a generated track is a single,
	// collected under the artist's "Singles" album.
	// Default: 0.25
	SingleRate float64

	// Seed feeds the deterministic random source.
	Seed int64
}

// DefaultConfig returns sensible defaults for small test datasets.
func DefaultConfig() Config {
	return Config{
		Artists:         8,
		AlbumsPerArtist: 3,
		TracksPerAlbum:  6,
		SingleRate:      0.25,
	}
}

// validate ensures config values are within acceptable bounds.
func (c *Config) validate() {
	if c.Artists < 1 {
		c.Artists = 8
	}
	if c.AlbumsPerArtist < 1 {
		c.AlbumsPerArtist = 3
	}
	if c.TracksPerAlbum < 1 {
		c.TracksPerAlbum = 6
	}
	if c.SingleRate < 0 || c.SingleRate > 1 {
		c.SingleRate = 0.25
	}
}

// Generate builds a dataset. The same config (including Seed) always
// produces the same dataset.
func Generate(cfg Config) Dataset {
	cfg.validate()
	rng := rand.New(rand.NewSource(cfg.Seed))

	var d Dataset
	for i := 0; i < cfg.Artists; i++ {
		artist := Artist{
			ID:   newID(rng),
			Name: firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))],
		}
		d.Artists = append(d.Artists, artist)

		// A lazily created per-artist album for singles, after the source
		// dataset's convention: name "Singles", no release date.
		singlesAlbumID := ""

		albums := 1 + rng.Intn(cfg.AlbumsPerArtist)
		for j := 0; j < albums; j++ {
			release := time.Date(2016+rng.Intn(10), time.Month(1+rng.Intn(12)), 1+rng.Intn(28), 0, 0, 0, 0, time.UTC)
			album := Album{
				ID:          newID(rng),
				ArtistID:    artist.ID,
				Name:        twoWords(rng),
				ReleaseDate: &release,
			}
			d.Albums = append(d.Albums, album)

			tracks := 1 + rng.Intn(cfg.TracksPerAlbum)
			for k := 0; k < tracks; k++ {
				track := newTrack(rng, artist.ID, album.ID)
				if rng.Float64() < cfg.SingleRate {
					if singlesAlbumID == "" {
						singlesAlbumID = newID(rng)
						d.Albums = append(d.Albums, Album{
							ID:       singlesAlbumID,
							ArtistID: artist.ID,
							Name:     "Singles",
						})
					}
					track.AlbumID = singlesAlbumID
					track.Single = true
				}
				d.Tracks = append(d.Tracks, track)
			}
		}
	}
	return d
}

func newTrack(rng *rand.Rand, artistID, albumID string) Track {
	streams := 50_000 + rng.Int63n(1_000_000_000-50_000)
	return Track{
		ID:              newID(rng),
		AlbumID:         albumID,
		ArtistID:        artistID,
		Title:           twoWords(rng),
		DurationSeconds: 120 + rng.Intn(481),
		Explicit:        rng.Float64() < 0.2,
		Genre:           genres[rng.Intn(len(genres))],
		Rating:          rating(rng, streams),
		Streams:         streams,
		Single:          false,
	}
}

// rating derives a popularity rating loosely tied to stream count, clamped
// to [1, 10] the way the source dataset does it.
func rating(rng *rand.Rand, streams int64) float64 {
	r := float64(streams)/10_000_000 + (rng.Float64()*6 - 1)
	if r > 10 {
		return 10
	}
	if r < 1 {
		return 1 + rng.Float64()*2
	}
	return r
}

func twoWords(rng *rand.Rand) string {
	a := titleWords[rng.Intn(len(titleWords))]
	b := titleWords[rng.Intn(len(titleWords))]
	return fmt.Sprintf("%s %s", a, b)
}

func newID(rng *rand.Rand) string {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		// rand.Rand's Read never fails.
		panic(err)
	}
	return id.String()
}

// RankInputs projects the dataset onto the core ranker's input types.
func (d Dataset) RankInputs() ([]rank.Artist, []rank.Track) {
	artists := make([]rank.Artist, 0, len(d.Artists))
	for _, a := range d.Artists {
		artists = append(artists, rank.Artist{ID: a.ID, Name: a.Name})
	}
	tracks := make([]rank.Track, 0, len(d.Tracks))
	for _, t := range d.Tracks {
		tracks = append(tracks, rank.Track{ID: t.ID, ArtistID: t.ArtistID, Title: t.Title})
	}
	return artists, tracks
}

// AlbumsOf returns the albums belonging to one artist, in generation order.
func (d Dataset) AlbumsOf(artistID string) []Album {
	var albums []Album
	for _, a := range d.Albums {
		if a.ArtistID == artistID {
			albums = append(albums, a)
		}
	}
	return albums
}

// TracksOf returns the tracks belonging to one album, in generation order.
func (d Dataset) TracksOf(albumID string) []Track {
	var tracks []Track
	for _, t := range d.Tracks {
		if t.AlbumID == albumID {
			tracks = append(tracks, t)
		}
	}
	return tracks
}
