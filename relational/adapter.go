// Package relational answers artist rankings against a PostgreSQL schema of
// artists(artist_id, artist_name) and tracks(track_id, ..., artist_id).
//
// The ranking contract is translated into a single read-only query: a counts
// subquery joining artists to tracks with COUNT + GROUP BY, and a window
// function selecting the top-N boundary. Under the default ZeroInclusive
// mode the join is a LEFT JOIN, so artists with no tracks appear with
// total_tracks 0 exactly as the in-memory ranker includes them. Under
// JoinExclusive the join is an INNER JOIN and zero-track artists are
// excluded by construction; callers selecting that mode opt into the
// divergence explicitly.
package relational

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/jacentio/chorus/rank"
)

var (
	dialect = goqu.Dialect("postgres")

	// Tables
	artistTable = goqu.T("artists")
	trackTable  = goqu.T("tracks")

	// Columns
	artistID      = goqu.I("artists.artist_id")
	artistName    = goqu.I("artists.artist_name")
	trackID       = goqu.I("tracks.track_id")
	trackArtistID = goqu.I("tracks.artist_id")
)

// Adapter computes artist rankings with a single Postgres query.
type Adapter struct {
	db *goqu.Database
}

// New wraps an open database handle. The handle is expected to use a
// Postgres driver such as pgx's database/sql adapter.
func New(db *sql.DB) *Adapter {
	return &Adapter{db: goqu.New("postgres", db)}
}

// TopArtists implements rank.Backend.
//
// In strict mode a dangling-reference probe runs first; tracks whose
// artist_id matches no artist fail the call with rank.ErrDanglingTrack.
// In lenient mode such tracks are invisible to the ranking query (it joins
// from artists) and are not reported, since the query never reads them.
func (a *Adapter) TopArtists(ctx context.Context, opts rank.Options) ([]rank.Result, error) {
	if opts.Strict {
		if err := a.checkDangling(ctx); err != nil {
			return nil, err
		}
	}

	query, err := topArtistsSQL(opts)
	if err != nil {
		return nil, err
	}

	rows, err := a.db.Db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", rank.ErrUnavailable, err)
	}
	defer rows.Close()

	var results []rank.Result
	for rows.Next() {
		var r rank.Result
		if err := rows.Scan(&r.ArtistID, &r.ArtistName, &r.TotalTracks); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// topArtistsSQL builds the ranking query. The window function encodes the
// tie policy: ROW_NUMBER with an artist_id tie-break yields exactly N rows,
// RANK keeps every artist tied with the Nth count.
func topArtistsSQL(opts rank.Options) (string, error) {
	n := opts.N
	if n < 1 {
		n = 1
	}

	pos := goqu.L("ROW_NUMBER() OVER (ORDER BY COUNT(tracks.track_id) DESC, artists.artist_id ASC)")
	if opts.Ties == rank.AllWinners {
		pos = goqu.L("RANK() OVER (ORDER BY COUNT(tracks.track_id) DESC)")
	}

	counts := dialect.From(artistTable).
		Select(
			artistID.As("artist_id"),
			artistName.As("artist_name"),
			goqu.COUNT(trackID).As("total_tracks"),
			pos.As("pos"),
		).
		GroupBy(artistID, artistName)

	if opts.Mode == rank.JoinExclusive {
		counts = counts.Join(trackTable, goqu.On(artistID.Eq(trackArtistID)))
	} else {
		counts = counts.LeftJoin(trackTable, goqu.On(artistID.Eq(trackArtistID)))
	}

	query, _, err := dialect.From(counts.As("counts")).
		Select(
			goqu.I("counts.artist_id"),
			goqu.I("counts.artist_name"),
			goqu.I("counts.total_tracks"),
		).
		Where(goqu.I("counts.pos").Lte(n)).
		Order(
			goqu.I("counts.total_tracks").Desc(),
			goqu.I("counts.artist_id").Asc(),
		).
		ToSQL()
	if err != nil {
		return "", fmt.Errorf("build ranking query: %w", err)
	}
	return query, nil
}

// danglingSQL builds the strict-mode probe: an anti-join counting tracks
// whose artist_id resolves to no artist row.
func danglingSQL() (string, error) {
	query, _, err := dialect.From(trackTable).
		LeftJoin(artistTable, goqu.On(trackArtistID.Eq(artistID))).
		Select(goqu.L("COUNT(*)").As("dangling")).
		Where(artistID.IsNull()).
		ToSQL()
	if err != nil {
		return "", fmt.Errorf("build dangling probe: %w", err)
	}
	return query, nil
}

func (a *Adapter) checkDangling(ctx context.Context) error {
	query, err := danglingSQL()
	if err != nil {
		return err
	}

	var dangling int64
	if err := a.db.Db.QueryRowContext(ctx, query).Scan(&dangling); err != nil {
		return fmt.Errorf("%w: %v", rank.ErrUnavailable, err)
	}
	if dangling > 0 {
		return fmt.Errorf("%w: %d tracks resolve to no artist", rank.ErrDanglingTrack, dangling)
	}
	return nil
}
