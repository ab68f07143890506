package models

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is one line of an order. The quantity and amount are
// informational: placing an order does not reserve or decrement stock.
type OrderItem struct {
	ProductID      string  `json:"product_id" bson:"product_id"`
	BoughtQuantity int     `json:"bought_quantity" bson:"bought_quantity"`
	TotalAmount    float64 `json:"total_amount" bson:"total_amount"`
}

// Order is an order document as stored in the orders collection.
// Orders are write-once: there is no status field and no transitions.
type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"user_id"`
	Items       []OrderItem        `bson:"items"`
	UserAddress string             `bson:"user_address"`
	Timestamp   time.Time          `bson:"timestamp"`
	TotalAmount float64            `bson:"total_amount"`
}

type CreateOrderRequest struct {
	UserID      string      `json:"user_id"`
	Items       []OrderItem `json:"items"`
	UserAddress string      `json:"user_address"`
}

func (r CreateOrderRequest) Validate() error {
	if r.UserID == "" {
		return errors.New("user_id is required")
	}
	if len(r.Items) == 0 {
		return errors.New("items must not be empty")
	}
	for i, it := range r.Items {
		if it.ProductID == "" {
			return fmt.Errorf("items[%d].product_id is required", i)
		}
		if it.BoughtQuantity <= 0 {
			return fmt.Errorf("items[%d].bought_quantity must be positive", i)
		}
		if it.TotalAmount < 0 {
			return fmt.Errorf("items[%d].total_amount must not be negative", i)
		}
	}
	return nil
}

// CreateOrderResponse deliberately uses "id" while the listing shape uses
// "order_id"; existing clients depend on the asymmetry.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

type OrderResponse struct {
	OrderID     string      `json:"order_id"`
	UserID      string      `json:"user_id"`
	Items       []OrderItem `json:"items"`
	UserAddress string      `json:"user_address"`
	Timestamp   time.Time   `json:"timestamp"`
	TotalAmount float64     `json:"total_amount"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

func (o Order) Response() OrderResponse {
	items := o.Items
	if items == nil {
		items = []OrderItem{}
	}
	return OrderResponse{
		OrderID:     o.ID.Hex(),
		UserID:      o.UserID,
		Items:       items,
		UserAddress: o.UserAddress,
		Timestamp:   o.Timestamp,
		TotalAmount: o.TotalAmount,
	}
}
