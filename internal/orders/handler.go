package orders

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"ecommerce-api/internal/api"
	"ecommerce-api/internal/events"
	"ecommerce-api/pkg/models"
)

// EventPublisher publishes order-created events; satisfied by
// *events.KafkaProducer. Optional: a nil publisher disables publishing.
type EventPublisher interface {
	PublishOrderCreated(event events.OrderCreatedEvent) error
}

// WebSocketHub pushes order-created notifications to connected clients.
type WebSocketHub interface {
	Broadcast(messageType string, data interface{})
}

type Handler struct {
	service   *Service
	logger    *logrus.Logger
	publisher EventPublisher
	wsHub     WebSocketHub
}

func NewHandler(service *Service, logger *logrus.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) SetPublisher(p EventPublisher) {
	h.publisher = p
}

func (h *Handler) SetWebSocketHub(hub WebSocketHub) {
	h.wsHub = hub
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/orders", h.CreateOrder).Methods("POST")
	r.HandleFunc("/orders/{user_id}", h.ListUserOrders).Methods("GET")
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		api.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, order, err := h.service.Create(r.Context(), req)
	if err != nil {
		var missing *MissingProductError
		if errors.As(err, &missing) {
			api.RespondError(w, http.StatusBadRequest, missing.Error())
			return
		}
		h.logger.WithError(err).Error("Failed to create order")
		api.RespondError(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	// Publishing and broadcasting happen after the write and never fail
	// the request.
	if h.publisher != nil {
		event := events.OrderCreatedEvent{
			OrderID:     id,
			UserID:      order.UserID,
			TotalAmount: order.TotalAmount,
			Timestamp:   order.Timestamp,
		}
		if err := h.publisher.PublishOrderCreated(event); err != nil {
			h.logger.WithError(err).Error("Failed to publish order created event")
		}
	}
	if h.wsHub != nil {
		resp := order.Response()
		resp.OrderID = id
		h.wsHub.Broadcast("order_created", resp)
	}

	api.RespondJSON(w, http.StatusCreated, models.CreateOrderResponse{ID: id})
}

func (h *Handler) ListUserOrders(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]
	limit, offset := api.Pagination(r)

	os, err := h.service.ListForUser(r.Context(), userID, limit, offset)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list orders")
		api.RespondError(w, http.StatusInternalServerError, "Failed to list orders")
		return
	}

	resp := models.OrderListResponse{Orders: make([]models.OrderResponse, 0, len(os))}
	for _, o := range os {
		resp.Orders = append(resp.Orders, o.Response())
	}
	api.RespondJSON(w, http.StatusOK, resp)
}
