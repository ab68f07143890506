package models

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductSize is one purchasable configuration of a product.
type ProductSize struct {
	Size     string `json:"size" bson:"size"`
	Quantity int    `json:"quantity" bson:"quantity"`
}

// Product is a product document as stored in the products collection.
// Products are write-once: there is no update or delete operation.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Price       float64            `bson:"price"`
	Description string             `bson:"description"`
	Sizes       []ProductSize      `bson:"sizes"`
	CreatedAt   time.Time          `bson:"created_at"`
}

type CreateProductRequest struct {
	Name        string        `json:"name"`
	Price       float64       `json:"price"`
	Description string        `json:"description"`
	Sizes       []ProductSize `json:"sizes"`
}

// Validate checks the request at the API boundary, before any store call.
func (r CreateProductRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	if r.Price < 0 {
		return errors.New("price must not be negative")
	}
	if r.Sizes == nil {
		return errors.New("sizes is required")
	}
	for i, s := range r.Sizes {
		if s.Size == "" {
			return fmt.Errorf("sizes[%d].size is required", i)
		}
		if s.Quantity < 0 {
			return fmt.Errorf("sizes[%d].quantity must not be negative", i)
		}
	}
	return nil
}

// Product converts the request into a storable document. The creation
// timestamp is assigned by the caller at insert time.
func (r CreateProductRequest) Product() Product {
	return Product{
		Name:        r.Name,
		Price:       r.Price,
		Description: r.Description,
		Sizes:       r.Sizes,
	}
}

type CreateProductResponse struct {
	ProductID string `json:"product_id"`
}

type ProductResponse struct {
	ProductID   string        `json:"product_id"`
	Name        string        `json:"name"`
	Price       float64       `json:"price"`
	Description string        `json:"description"`
	Sizes       []ProductSize `json:"sizes"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

// Response maps the stored document to the listing shape, exposing the
// ObjectID as the product_id hex string.
func (p Product) Response() ProductResponse {
	sizes := p.Sizes
	if sizes == nil {
		sizes = []ProductSize{}
	}
	return ProductResponse{
		ProductID:   p.ID.Hex(),
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		Sizes:       sizes,
	}
}
