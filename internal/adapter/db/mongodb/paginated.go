package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/JacobNatural/task-manager/internal/core/filter"
)

type pageCount struct {
	TotalCount int64 `bson:"totalCount"`
}

// facetPage is the single document produced by pagePipeline.
type facetPage[D any] struct {
	Elements  []D         `bson:"elements"`
	CountInfo []pageCount `bson:"countInfo"`
}

// pagePipeline filters once and then splits the matches into the requested
// page and a count of all of them, so both come back in one round trip.
// Documents are ordered by _id, which grows with insertion.
func pagePipeline(match bson.D, page, size int64) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: fieldID, Value: 1}}}},
		{{Key: "$facet", Value: bson.D{
			{Key: "elements", Value: bson.A{
				bson.D{{Key: "$skip", Value: page * size}},
				bson.D{{Key: "$limit", Value: size}},
			}},
			{Key: "countInfo", Value: bson.A{
				bson.D{{Key: "$count", Value: "totalCount"}},
			}},
		}}},
	}
}

// pagedCollection runs paged, filtered reads over one collection. D is the
// stored document type and T the domain type it maps to.
type pagedCollection[D, T any] struct {
	collection *mongo.Collection
	fields     map[string]string
	toDomain   func(D) T
}

func (p pagedCollection[D, T]) FindPage(ctx context.Context, predicate filter.Predicate, page, size int64) ([]T, int64, error) {
	match, err := renderFilter(predicate, p.fields)
	if err != nil {
		return nil, 0, err
	}

	cursor, err := p.collection.Aggregate(ctx, pagePipeline(match, page, size))
	if err != nil {
		return nil, 0, fmt.Errorf("aggregate %s page: %w", p.collection.Name(), err)
	}

	var results []facetPage[D]
	if err := cursor.All(ctx, &results); err != nil {
		return nil, 0, fmt.Errorf("decode %s page: %w", p.collection.Name(), err)
	}

	if len(results) == 0 {
		return []T{}, 0, nil
	}

	items := make([]T, 0, len(results[0].Elements))
	for _, doc := range results[0].Elements {
		items = append(items, p.toDomain(doc))
	}

	var total int64
	if len(results[0].CountInfo) > 0 {
		total = results[0].CountInfo[0].TotalCount
	}

	return items, total, nil
}
