package products

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"ecommerce-api/pkg/models"
)

// Repo reads and writes the products collection.
type Repo struct {
	coll *mongo.Collection
}

func NewRepo(db *mongo.Database) *Repo {
	return &Repo{coll: db.Collection("products")}
}

// Create inserts the product with a server-assigned creation timestamp and
// returns the generated id as a hex string.
func (r *Repo) Create(ctx context.Context, p models.Product) (string, error) {
	p.CreatedAt = time.Now().UTC()
	res, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *Repo) List(ctx context.Context, f ListFilter) ([]models.Product, error) {
	cur, err := r.coll.Find(ctx, f.query(), f.findOptions())
	if err != nil {
		return nil, err
	}
	var out []models.Product
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Exists reports whether the id resolves to a stored product. An id that is
// not a valid ObjectID cannot reference anything, so it reports false
// rather than an error.
func (r *Repo) Exists(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
