package products

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ecommerce-api/internal/api"
)

// ListFilter carries the optional listing filters and pagination bounds.
// Name and Size are independent; when both are set they combine with AND.
type ListFilter struct {
	Name   string
	Size   string
	Limit  int64
	Offset int64
}

func (f ListFilter) query() bson.M {
	q := bson.M{}
	if f.Name != "" {
		// Case-insensitive substring/regex match; clients rely on this.
		q["name"] = bson.M{"$regex": f.Name, "$options": "i"}
	}
	if f.Size != "" {
		q["sizes.size"] = f.Size
	}
	return q
}

func (f ListFilter) findOptions() *options.FindOptions {
	limit := f.Limit
	if limit <= 0 {
		limit = api.DefaultLimit
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}
	// ObjectIDs embed the creation time, so sorting on _id keeps
	// pagination stable in creation order.
	return options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(offset).
		SetLimit(limit)
}
