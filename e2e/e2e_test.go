//go:build e2e

// Package e2e contains end-to-end tests against real backends. Each backend
// is seeded with the same generated dataset and its adapter's output is
// checked against the in-memory ranker. Run with:
//
//	go test -tags=e2e -v ./e2e/...
//
// Backends without configuration are skipped:
//
//	CHORUS_E2E_POSTGRES_DSN  - Postgres connection string
//	CHORUS_E2E_MONGO_URI     - MongoDB connection URI
//	CHORUS_E2E_DYNAMO_PREFIX - DynamoDB table name prefix (plus AWS config)
package e2e

import (
	"reflect"
	"testing"

	"github.com/jacentio/chorus/internal/musicdata"
	"github.com/jacentio/chorus/rank"
)

const datasetSeed = 20240817

// testDataset returns the shared dataset plus one artist with no tracks, so
// zero-inclusive behavior is observable end to end.
func testDataset() musicdata.Dataset {
	cfg := musicdata.DefaultConfig()
	cfg.Seed = datasetSeed
	d := musicdata.Generate(cfg)
	d.Artists = append(d.Artists, musicdata.Artist{
		ID:   "00000000-0000-0000-0000-00000000beef",
		Name: "Silent Partner",
	})
	return d
}

// rankOptions are the option sets every backend is exercised with.
func rankOptions() map[string]rank.Options {
	single := rank.DefaultOptions()

	topThree := rank.DefaultOptions()
	topThree.N = 3

	allWinners := rank.DefaultOptions()
	allWinners.N = 2
	allWinners.Ties = rank.AllWinners

	exclusive := rank.DefaultOptions()
	exclusive.N = 3
	exclusive.Mode = rank.JoinExclusive

	return map[string]rank.Options{
		"single winner":  single,
		"top three":      topThree,
		"all winners":    allWinners,
		"join exclusive": exclusive,
	}
}

// expectedTop computes the reference ranking for a dataset and option set.
func expectedTop(t *testing.T, d musicdata.Dataset, opts rank.Options) []rank.Result {
	t.Helper()
	artists, tracks := d.RankInputs()
	want, err := rank.Top(artists, tracks, opts)
	if err != nil {
		t.Fatalf("reference ranking failed: %v", err)
	}
	return want
}

func assertResultsEqual(t *testing.T, got, want []rank.Result) {
	t.Helper()
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("backend disagrees with reference ranking\n got: %v\nwant: %v", got, want)
	}
}
