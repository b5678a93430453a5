package document

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jacentio/chorus/rank"
)

// projectStage reshapes the grouping key back into the flat result fields
// shared with the other backends.
var projectStage = bson.D{{Key: "$project", Value: bson.D{
	{Key: "_id", Value: 0},
	{Key: "artist_id", Value: "$_id.artist_id"},
	{Key: "artist_name", Value: "$_id.artist_name"},
	{Key: "total_tracks", Value: 1},
}}}

// sortStage orders grouped counts descending with the ascending artist-ID
// tie-break, matching rank.SortResults.
var sortStage = bson.D{{Key: "$sort", Value: bson.D{
	{Key: "total_tracks", Value: -1},
	{Key: "_id.artist_id", Value: 1},
}}}

// trackDocsPipeline groups flat track documents by their embedded artist
// identity and keeps the top-N. Under AllWinners the $limit is omitted and
// the tie boundary is trimmed client-side with rank.TakeTop, which avoids a
// dependency on server-side window stages.
func trackDocsPipeline(opts rank.Options) mongo.Pipeline {
	p := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "artist_id", Value: "$artist.artist_id"},
				{Key: "artist_name", Value: "$artist.artist_name"},
			}},
			{Key: "total_tracks", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		sortStage,
	}
	if stage, ok := limitStage(opts); ok {
		p = append(p, stage)
	}
	return append(p, projectStage)
}

// embeddedPipeline flattens the nested artist shape (unwind albums, then
// each album's tracks) before counting leaf tracks per artist. A non-empty
// artistName prepends a $match so only that artist's document is flattened.
//
// Under ZeroInclusive both unwinds preserve empty arrays and the count is
// conditional, so a track-less artist still yields a single zero row.
func embeddedPipeline(opts rank.Options, artistName string) mongo.Pipeline {
	preserve := opts.Mode == rank.ZeroInclusive

	var p mongo.Pipeline
	if artistName != "" {
		p = append(p, bson.D{{Key: "$match", Value: bson.D{
			{Key: "artist_name", Value: artistName},
		}}})
	}
	p = append(p,
		unwindStage("$albums", preserve),
		unwindStage("$albums.tracks", preserve),
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "artist_id", Value: "$_id"},
				{Key: "artist_name", Value: "$artist_name"},
			}},
			{Key: "total_tracks", Value: leafCountExpr(preserve)},
		}}},
		sortStage,
	)
	if artistName == "" {
		if stage, ok := limitStage(opts); ok {
			p = append(p, stage)
		}
	}
	return append(p, projectStage)
}

func unwindStage(path string, preserve bool) bson.D {
	return bson.D{{Key: "$unwind", Value: bson.D{
		{Key: "path", Value: path},
		{Key: "preserveNullAndEmptyArrays", Value: preserve},
	}}}
}

// leafCountExpr counts one per unwound track. With preserved empty arrays a
// track-less artist reaches $group as a single row without a track, which
// must count zero rather than one.
func leafCountExpr(preserve bool) bson.D {
	if !preserve {
		return bson.D{{Key: "$sum", Value: 1}}
	}
	return bson.D{{Key: "$sum", Value: bson.D{{Key: "$cond", Value: bson.A{
		bson.D{{Key: "$ifNull", Value: bson.A{"$albums.tracks", false}}},
		1,
		0,
	}}}}}
}

// limitStage returns the $limit pushdown, which only applies under
// SingleWinner: an AllWinners boundary cannot be expressed as a row limit.
func limitStage(opts rank.Options) (bson.D, bool) {
	if opts.Ties == rank.AllWinners {
		return bson.D{}, false
	}
	n := opts.N
	if n < 1 {
		n = 1
	}
	return bson.D{{Key: "$limit", Value: int64(n)}}, true
}
