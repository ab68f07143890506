package products

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"ecommerce-api/internal/api"
	"ecommerce-api/pkg/models"
)

// Store is the catalog access the handler needs; satisfied by *Repo.
type Store interface {
	Create(ctx context.Context, p models.Product) (string, error)
	List(ctx context.Context, f ListFilter) ([]models.Product, error)
}

type Handler struct {
	store  Store
	logger *logrus.Logger
}

func NewHandler(store Store, logger *logrus.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/products", h.CreateProduct).Methods("POST")
	r.HandleFunc("/products", h.ListProducts).Methods("GET")
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		api.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.store.Create(r.Context(), req.Product())
	if err != nil {
		h.logger.WithError(err).Error("Failed to create product")
		api.RespondError(w, http.StatusInternalServerError, "Failed to create product")
		return
	}

	h.logger.WithFields(logrus.Fields{
		"product_id": id,
		"name":       req.Name,
	}).Info("Product created")

	api.RespondJSON(w, http.StatusCreated, models.CreateProductResponse{ProductID: id})
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	f := ListFilter{
		Name: r.URL.Query().Get("name"),
		Size: r.URL.Query().Get("size"),
	}
	f.Limit, f.Offset = api.Pagination(r)

	ps, err := h.store.List(r.Context(), f)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list products")
		api.RespondError(w, http.StatusInternalServerError, "Failed to list products")
		return
	}

	resp := models.ProductListResponse{Products: make([]models.ProductResponse, 0, len(ps))}
	for _, p := range ps {
		resp.Products = append(resp.Products, p.Response())
	}
	api.RespondJSON(w, http.StatusOK, resp)
}
