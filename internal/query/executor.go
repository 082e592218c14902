package query

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Find executes a list query against a collection, decoding the result page
// into results (a pointer to a slice). The base filter is merged into the
// translated filter and cannot be overridden by query-string keys.
//
// The total used for pagination is the count of documents matching the
// combined filter, so next/prev reflect the filtered set.
func Find(ctx context.Context, coll *mongo.Collection, q *ListQuery, base bson.M, results interface{}) (*Pagination, error) {
	filter := bson.M{}
	for k, v := range q.Filter {
		filter[k] = v
	}
	for k, v := range base {
		filter[k] = v
	}

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(q.Sort).
		SetSkip(q.Skip()).
		SetLimit(int64(q.Limit))
	if len(q.Projection) > 0 {
		opts.SetProjection(q.Projection)
	}

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, results); err != nil {
		return nil, err
	}

	return Paginate(q.Page, q.Limit, total), nil
}
