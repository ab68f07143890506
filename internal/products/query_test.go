package products

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestQueryNoFilters(t *testing.T) {
	q := ListFilter{}.query()
	assert.Equal(t, bson.M{}, q)
}

func TestQueryNameFilter(t *testing.T) {
	q := ListFilter{Name: "shirt"}.query()
	assert.Equal(t, bson.M{
		"name": bson.M{"$regex": "shirt", "$options": "i"},
	}, q)
}

func TestQuerySizeFilter(t *testing.T) {
	q := ListFilter{Size: "M"}.query()
	assert.Equal(t, bson.M{"sizes.size": "M"}, q)
}

func TestQueryCombinedFiltersAnd(t *testing.T) {
	q := ListFilter{Name: "shirt", Size: "L"}.query()
	require.Len(t, q, 2)
	assert.Equal(t, bson.M{"$regex": "shirt", "$options": "i"}, q["name"])
	assert.Equal(t, "L", q["sizes.size"])
}

func TestFindOptionsDefaults(t *testing.T) {
	opts := ListFilter{}.findOptions()

	require.NotNil(t, opts.Limit)
	require.NotNil(t, opts.Skip)
	assert.Equal(t, int64(10), *opts.Limit)
	assert.Equal(t, int64(0), *opts.Skip)
}

func TestFindOptionsPassThrough(t *testing.T) {
	opts := ListFilter{Limit: 2, Offset: 4}.findOptions()

	require.NotNil(t, opts.Limit)
	require.NotNil(t, opts.Skip)
	assert.Equal(t, int64(2), *opts.Limit)
	assert.Equal(t, int64(4), *opts.Skip)
}

func TestFindOptionsNegativeBoundsClamped(t *testing.T) {
	opts := ListFilter{Limit: -1, Offset: -3}.findOptions()

	assert.Equal(t, int64(10), *opts.Limit)
	assert.Equal(t, int64(0), *opts.Skip)
}

func TestFindOptionsStableSort(t *testing.T) {
	opts := ListFilter{}.findOptions()

	require.NotNil(t, opts.Sort)
	assert.Equal(t, bson.D{{Key: "_id", Value: 1}}, opts.Sort)
}
