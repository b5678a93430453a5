package relational

import (
	"strings"
	"testing"

	"github.com/jacentio/chorus/rank"
)

// --- SQL generation ---

func TestTopArtistsSQL_Defaults(t *testing.T) {
	query, err := topArtistsSQL(rank.DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"LEFT JOIN",
		`COUNT("tracks"."track_id")`,
		"GROUP BY",
		"ROW_NUMBER() OVER (ORDER BY COUNT(tracks.track_id) DESC, artists.artist_id ASC)",
		`"total_tracks" DESC`,
		`"artist_id" ASC`,
	} {
		if !strings.Contains(query, want) {
			t.Errorf("expected query to contain %q, got:\n%s", want, query)
		}
	}
	if strings.Contains(query, "RANK() OVER") {
		t.Errorf("single-winner query must not use RANK(), got:\n%s", query)
	}
}

func TestTopArtistsSQL_JoinExclusive(t *testing.T) {
	opts := rank.DefaultOptions()
	opts.Mode = rank.JoinExclusive

	query, err := topArtistsSQL(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(query, "LEFT JOIN") {
		t.Errorf("join-exclusive query must not use LEFT JOIN, got:\n%s", query)
	}
	if !strings.Contains(query, "INNER JOIN") {
		t.Errorf("expected INNER JOIN, got:\n%s", query)
	}
}

func TestTopArtistsSQL_AllWinners(t *testing.T) {
	opts := rank.DefaultOptions()
	opts.Ties = rank.AllWinners
	opts.N = 3

	query, err := topArtistsSQL(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(query, "RANK() OVER (ORDER BY COUNT(tracks.track_id) DESC)") {
		t.Errorf("expected RANK() window function, got:\n%s", query)
	}
	if strings.Contains(query, "ROW_NUMBER()") {
		t.Errorf("all-winners query must not use ROW_NUMBER(), got:\n%s", query)
	}
	if !strings.Contains(query, "3") {
		t.Errorf("expected position bound 3, got:\n%s", query)
	}
}

func TestTopArtistsSQL_ClampsN(t *testing.T) {
	opts := rank.Options{N: 0}

	query, err := topArtistsSQL(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(query, `"counts"."pos" <= 1`) {
		t.Errorf("expected position bound clamped to 1, got:\n%s", query)
	}
}

func TestDanglingSQL(t *testing.T) {
	query, err := danglingSQL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		`FROM "tracks"`,
		"LEFT JOIN",
		"COUNT(*)",
		`"artists"."artist_id" IS NULL`,
	} {
		if !strings.Contains(query, want) {
			t.Errorf("expected probe to contain %q, got:\n%s", want, query)
		}
	}
}
