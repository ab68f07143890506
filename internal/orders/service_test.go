package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecommerce-api/pkg/models"
)

type fakeCatalog struct {
	existing map[string]bool
	err      error
	checked  []string
}

func (f *fakeCatalog) Exists(_ context.Context, productID string) (bool, error) {
	f.checked = append(f.checked, productID)
	if f.err != nil {
		return false, f.err
	}
	return f.existing[productID], nil
}

type fakeOrderStore struct {
	inserted  []models.Order
	insertErr error
	orders    []models.Order
	listErr   error
}

func (f *fakeOrderStore) Insert(_ context.Context, o models.Order) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	o.ID = primitive.NewObjectID()
	f.inserted = append(f.inserted, o)
	return o.ID.Hex(), nil
}

func (f *fakeOrderStore) ListByUser(_ context.Context, userID string, limit, offset int64) ([]models.Order, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	if offset >= int64(len(out)) {
		return nil, nil
	}
	out = out[offset:]
	if limit < int64(len(out)) {
		out = out[:limit]
	}
	return out, nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel) // Reduce noise in tests
	return logger
}

func TestCreateOrderAllProductsExist(t *testing.T) {
	p1 := primitive.NewObjectID().Hex()
	p2 := primitive.NewObjectID().Hex()
	catalog := &fakeCatalog{existing: map[string]bool{p1: true, p2: true}}
	store := &fakeOrderStore{}
	svc := NewService(catalog, store, testLogger())

	before := time.Now().UTC()
	id, order, err := svc.Create(context.Background(), models.CreateOrderRequest{
		UserID: "u1",
		Items: []models.OrderItem{
			{ProductID: p1, BoughtQuantity: 1, TotalAmount: 20},
			{ProductID: p2, BoughtQuantity: 3, TotalAmount: 7.5},
		},
		UserAddress: "addr",
	})

	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.Len(t, store.inserted, 1)

	persisted := store.inserted[0]
	assert.Equal(t, "u1", persisted.UserID)
	assert.Equal(t, "addr", persisted.UserAddress)
	assert.Len(t, persisted.Items, 2)
	assert.Equal(t, 27.5, persisted.TotalAmount)
	assert.Equal(t, persisted.TotalAmount, order.TotalAmount)
	assert.False(t, order.Timestamp.Before(before), "timestamp must not be earlier than request time")
}

func TestCreateOrderMissingProductFailsFast(t *testing.T) {
	p1 := primitive.NewObjectID().Hex()
	p3 := primitive.NewObjectID().Hex()
	catalog := &fakeCatalog{existing: map[string]bool{p1: true, p3: true}}
	store := &fakeOrderStore{}
	svc := NewService(catalog, store, testLogger())

	_, _, err := svc.Create(context.Background(), models.CreateOrderRequest{
		UserID: "u1",
		Items: []models.OrderItem{
			{ProductID: p1, BoughtQuantity: 1, TotalAmount: 10},
			{ProductID: "nonexistent", BoughtQuantity: 1, TotalAmount: 10},
			{ProductID: p3, BoughtQuantity: 1, TotalAmount: 10},
		},
		UserAddress: "addr",
	})

	var missing *MissingProductError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "nonexistent", missing.ProductID)
	assert.Equal(t, "Product nonexistent not found", err.Error())

	// Fail-fast: the third product is never checked and nothing is persisted.
	assert.Equal(t, []string{p1, "nonexistent"}, catalog.checked)
	assert.Empty(t, store.inserted)
}

func TestCreateOrderCatalogErrorPropagates(t *testing.T) {
	catalog := &fakeCatalog{err: errors.New("connection lost")}
	store := &fakeOrderStore{}
	svc := NewService(catalog, store, testLogger())

	_, _, err := svc.Create(context.Background(), models.CreateOrderRequest{
		UserID:      "u1",
		Items:       []models.OrderItem{{ProductID: "p", BoughtQuantity: 1, TotalAmount: 5}},
		UserAddress: "addr",
	})

	require.Error(t, err)
	var missing *MissingProductError
	assert.False(t, errors.As(err, &missing), "store failure must not be reported as a missing reference")
	assert.Empty(t, store.inserted)
}

func TestCreateOrderInsertErrorPropagates(t *testing.T) {
	catalog := &fakeCatalog{existing: map[string]bool{"p": true}}
	store := &fakeOrderStore{insertErr: errors.New("write failed")}
	svc := NewService(catalog, store, testLogger())

	_, _, err := svc.Create(context.Background(), models.CreateOrderRequest{
		UserID:      "u1",
		Items:       []models.OrderItem{{ProductID: "p", BoughtQuantity: 1, TotalAmount: 5}},
		UserAddress: "addr",
	})

	require.Error(t, err)
	assert.Empty(t, store.inserted)
}

func TestListForUserEmptyIsNotAnError(t *testing.T) {
	svc := NewService(&fakeCatalog{}, &fakeOrderStore{}, testLogger())

	out, err := svc.ListForUser(context.Background(), "nobody", 10, 0)

	require.NoError(t, err)
	assert.Empty(t, out)
}
