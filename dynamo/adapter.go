// Package dynamo answers artist rankings against a pair of DynamoDB tables:
// an artists table and a tracks table with a GSI keyed by artist_id.
//
// DynamoDB has no server-side GROUP BY, so the adapter scans the artists
// table and fans out one Select COUNT query per artist against the track
// index, then finalizes the ranking with the shared helpers from rank.
// Artists with no tracks count zero, so the adapter is zero-inclusive by
// default; JoinExclusive filters the zero rows before ranking.
//
// Tracks whose artist_id matches no artist item live in index partitions
// the adapter never queries, so dangling references cannot be observed:
// rank.Options.Strict is ignored and the adapter behaves leniently, without
// skip reports. Callers needing strict integrity should enforce it at write
// time, as the data owner.
package dynamo

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/jacentio/chorus/rank"
)

// Adapter computes artist rankings against DynamoDB.
type Adapter struct {
	client *dynamodb.Client
	config Config
}

// New creates a new Adapter instance.
func New(client *dynamodb.Client, config Config) *Adapter {
	config.validate()
	return &Adapter{
		client: client,
		config: config,
	}
}

type artistRow struct {
	ID   string `dynamodbav:"artist_id"`
	Name string `dynamodbav:"artist_name"`
}

// TopArtists implements rank.Backend.
func (a *Adapter) TopArtists(ctx context.Context, opts rank.Options) ([]rank.Result, error) {
	artists, err := a.listArtists(ctx)
	if err != nil {
		return nil, err
	}
	if len(artists) == 0 {
		return nil, nil
	}

	results, err := a.countAll(ctx, artists)
	if err != nil {
		return nil, err
	}

	if opts.Mode == rank.JoinExclusive {
		kept := results[:0]
		for _, r := range results {
			if r.TotalTracks > 0 {
				kept = append(kept, r)
			}
		}
		results = kept
	}

	rank.SortResults(results)
	return rank.TakeTop(results, opts.N, opts.Ties), nil
}

// listArtists scans the artists table, paginating through all items.
func (a *Adapter) listArtists(ctx context.Context) ([]artistRow, error) {
	var artists []artistRow

	paginator := dynamodb.NewScanPaginator(a.client, &dynamodb.ScanInput{
		TableName:            aws.String(a.config.ArtistsTable),
		ProjectionExpression: aws.String("artist_id, artist_name"),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", rank.ErrUnavailable, err)
		}
		var rows []artistRow
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &rows); err != nil {
			return nil, fmt.Errorf("unmarshal artists: %w", err)
		}
		artists = append(artists, rows...)
	}

	return artists, nil
}

// countAll fans out count queries across a bounded worker pool. The first
// failure cancels the remaining work.
func (a *Adapter) countAll(ctx context.Context, artists []artistRow) ([]rank.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers := a.config.Parallelism
	if workers < 1 {
		workers = 1
	}
	if workers > len(artists) {
		workers = len(artists)
	}

	jobs := make(chan artistRow)
	errs := make(chan error, workers)
	var mu sync.Mutex
	var results []rank.Result
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for artist := range jobs {
				total, err := a.countTracks(ctx, artist.ID)
				if err != nil {
					errs <- err
					cancel()
					return
				}
				mu.Lock()
				results = append(results, rank.Result{
					ArtistID:    artist.ID,
					ArtistName:  artist.Name,
					TotalTracks: total,
				})
				mu.Unlock()
			}
		}()
	}

feed:
	for _, artist := range artists {
		select {
		case jobs <- artist:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil && !errors.Is(err, context.Canceled) {
			return nil, err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", rank.ErrUnavailable, err)
	}

	return results, nil
}

// countTracks sums Select COUNT query pages for one artist's index partition.
func (a *Adapter) countTracks(ctx context.Context, artistID string) (int64, error) {
	var total int64

	paginator := dynamodb.NewQueryPaginator(a.client, &dynamodb.QueryInput{
		TableName:              aws.String(a.config.TracksTable),
		IndexName:              aws.String(a.config.ArtistIndex),
		KeyConditionExpression: aws.String("artist_id = :artist_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":artist_id": &types.AttributeValueMemberS{Value: artistID},
		},
		Select: types.SelectCount,
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", rank.ErrUnavailable, err)
		}
		total += int64(page.Count)
	}

	return total, nil
}
