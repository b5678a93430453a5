package rank

import (
	"fmt"
	"sort"
)

// Rank pairs every artist with its track count, ordered by count descending
// then artist ID ascending. Artists with zero tracks are included under
// ZeroInclusive and dropped under JoinExclusive. An empty artist set yields
// an empty result.
//
// In strict mode a track whose ArtistID matches no supplied artist fails the
// whole ranking with ErrDanglingTrack. In lenient mode the track is skipped,
// reported through opts.OnSkip, and does not affect other counts.
func Rank(artists []Artist, tracks []Track, opts Options) ([]Result, error) {
	opts.validate()

	counts := make(map[string]int64, len(artists))
	names := make(map[string]string, len(artists))
	for _, a := range artists {
		counts[a.ID] = 0
		names[a.ID] = a.Name
	}

	for _, t := range tracks {
		if _, ok := counts[t.ArtistID]; !ok {
			if opts.Strict {
				return nil, fmt.Errorf("%w: track %q references artist %q", ErrDanglingTrack, t.ID, t.ArtistID)
			}
			if opts.OnSkip != nil {
				opts.OnSkip(t.ID, t.ArtistID)
			}
			continue
		}
		counts[t.ArtistID]++
	}

	results := make([]Result, 0, len(counts))
	for id, total := range counts {
		if opts.Mode == JoinExclusive && total == 0 {
			continue
		}
		results = append(results, Result{
			ArtistID:    id,
			ArtistName:  names[id],
			TotalTracks: total,
		})
	}

	SortResults(results)
	return results, nil
}

// Top returns the top-N rank positions under the tie policy in opts.
// It is Rank truncated with TakeTop.
func Top(artists []Artist, tracks []Track, opts Options) ([]Result, error) {
	opts.validate()

	results, err := Rank(artists, tracks, opts)
	if err != nil {
		return nil, err
	}
	return TakeTop(results, opts.N, opts.Ties), nil
}

// SortResults orders results by track count descending, then artist ID
// ascending. Backend adapters use this so ordering cannot drift from the
// in-memory contract.
func SortResults(results []Result) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].TotalTracks != results[j].TotalTracks {
			return results[i].TotalTracks > results[j].TotalTracks
		}
		return results[i].ArtistID < results[j].ArtistID
	})
}

// TakeTop truncates a sorted ranking to the top n positions under the given
// tie policy. Under AllWinners every result tied with the nth count is kept.
// Results must already be in SortResults order.
func TakeTop(results []Result, n int, ties TiePolicy) []Result {
	if n < 1 {
		n = 1
	}
	if len(results) <= n {
		return results
	}
	if ties == AllWinners {
		boundary := results[n-1].TotalTracks
		for n < len(results) && results[n].TotalTracks == boundary {
			n++
		}
	}
	return results[:n]
}
