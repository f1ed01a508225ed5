package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"cafe-ledger/db"
	"cafe-ledger/handlers"
	httpHandler "cafe-ledger/handlers/http"
	"cafe-ledger/logging"
	"cafe-ledger/metrics"
	"cafe-ledger/reports"
	"cafe-ledger/repositories"
	"cafe-ledger/usecases"
	"cafe-ledger/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	app     *gin.Engine
	db      db.Database
	log     *zap.Logger
	metrics *metrics.Metrics
	feed    *ws.Manager
}

func NewServer(database db.Database, log *zap.Logger) *Server {
	s := &Server{
		app:     gin.New(),
		db:      database,
		log:     log,
		metrics: metrics.New(),
		feed:    ws.NewManager(log.Named("feed")),
	}
	s.setupRoutes()
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.app
}

func (s *Server) setupRoutes() {
	s.app.Use(logging.GinMiddleware(s.log), logging.Recovery(s.log))

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", logging.RequestIDHeader}
	s.app.Use(cors.New(config))

	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "OK",
		})
	})
	s.app.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	store := repositories.NewStore(s.db)
	cafe := usecases.NewCafeUseCase(store, s.log,
		usecases.WithMetrics(s.metrics),
		usecases.WithNotifier(s.feed),
	)

	loginHandler := httpHandler.NewLoginHandler(cafe)
	userHandler := httpHandler.NewUserHandler(cafe)
	ledgerHandler := httpHandler.NewLedgerHandler(cafe)
	inventoryHandler := httpHandler.NewInventoryHandler(cafe)
	reportHandler := httpHandler.NewReportHandler(reports.NewBuilder(store))
	wsHandler := handlers.NewWSHandler(s.feed, s.log)

	api := s.app.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", loginHandler.Login)
		}

		users := api.Group("/users")
		{
			users.POST("", userHandler.RegisterUser)
			users.GET("", userHandler.ListUsers)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		expenses := api.Group("/expenses")
		{
			expenses.POST("", ledgerHandler.RecordExpense)
			expenses.GET("", ledgerHandler.ExpenseHistory)
		}

		inventory := api.Group("/inventory")
		{
			inventory.POST("", inventoryHandler.AddItem)
			inventory.GET("", inventoryHandler.ListItems)
			inventory.PUT("/:id", inventoryHandler.UpdateItem)
			inventory.DELETE("/:id", inventoryHandler.DeleteItem)
			inventory.GET("/:id/quote", inventoryHandler.Quote)
			inventory.POST("/:id/purchase", inventoryHandler.Purchase)
		}

		sales := api.Group("/sales")
		{
			sales.POST("", ledgerHandler.RecordSale)
			sales.GET("", ledgerHandler.SalesHistory)
		}

		reportRoutes := api.Group("/reports")
		{
			reportRoutes.GET("", reportHandler.All)
			reportRoutes.GET("/expenses", reportHandler.Expenses)
			reportRoutes.GET("/inventory", reportHandler.Inventory)
			reportRoutes.GET("/sales", reportHandler.Sales)
		}

		api.GET("/feed/subscribers", wsHandler.GetSubscribers)
	}

	s.app.GET("/ws", wsHandler.HandleSalesFeed)
}

// Start serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.app,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
