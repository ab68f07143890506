package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"ecommerce-api/internal/api"
	"ecommerce-api/internal/config"
	"ecommerce-api/internal/events"
	"ecommerce-api/internal/orders"
	"ecommerce-api/internal/products"
	"ecommerce-api/internal/store"
	ws "ecommerce-api/internal/websocket"
)

func main() {
	_ = godotenv.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)

	cfg := config.Load()

	// Connect to MongoDB
	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := store.Connect(connectCtx, cfg.MongoURL)
	cancel()
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logger.WithError(err).Error("Failed to disconnect from MongoDB")
		}
	}()
	logger.Info("MongoDB connection established")

	db := client.Database(cfg.MongoDB)

	// Kafka producer (optional: enabled when KAFKA_BROKERS is set)
	var producer *events.KafkaProducer
	if len(cfg.KafkaBrokers) > 0 {
		producer, err = events.NewKafkaProducer(cfg.KafkaBrokers, logger)
		if err != nil {
			logger.WithError(err).Fatal("Failed to create Kafka producer")
		}
		defer producer.Close()
	}

	// WebSocket hub for order notifications
	hub := ws.NewHub(logger)
	go hub.Run()

	// Repos, service, handlers
	productRepo := products.NewRepo(db)
	orderRepo := orders.NewRepo(db)
	orderService := orders.NewService(productRepo, orderRepo, logger)

	productHandler := products.NewHandler(productRepo, logger)
	orderHandler := orders.NewHandler(orderService, logger)
	if producer != nil {
		orderHandler.SetPublisher(producer)
	}
	orderHandler.SetWebSocketHub(hub)

	// Routes
	router := mux.NewRouter()
	router.HandleFunc("/", rootHandler).Methods("GET")
	router.HandleFunc("/health", healthHandler(client)).Methods("GET")
	router.HandleFunc("/ws", hub.HandleWebSocket)
	productHandler.Register(router)
	orderHandler.Register(router)

	// Middleware
	router.Use(api.RequestID)
	router.Use(api.Logging(logger))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.WithField("port", cfg.Port).Info("Starting ecommerce API")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")
	ctx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}

	logger.Info("Server gracefully stopped")
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	api.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "Ecommerce Backend API is running",
	})
}

func healthHandler(client *mongo.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			api.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status":   "unhealthy",
				"database": "disconnected",
				"error":    err.Error(),
			})
			return
		}
		api.RespondJSON(w, http.StatusOK, map[string]string{
			"status":   "healthy",
			"database": "connected",
		})
	}
}
