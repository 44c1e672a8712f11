package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"github.com/valeriy131100/star-burger/docs"
	"github.com/valeriy131100/star-burger/internal/queue"
	"github.com/valeriy131100/star-burger/internal/ratelimiter"
	"github.com/valeriy131100/star-burger/internal/service"
	"github.com/valeriy131100/star-burger/internal/store/mongo"
	"github.com/valeriy131100/star-burger/internal/worker"
	"go.uber.org/zap"
)

type application struct {
	config         config
	logger         *zap.SugaredLogger
	rateLimiter    ratelimiter.Limiter
	storage        *mongo.Storage
	redis          *redis.Client
	broker         queue.Broker
	catalogService *service.CatalogService
	orderService   *service.OrderService
	reportService  *service.ReportService
	importService  *service.ImportService
	authService    *service.AuthService
	importWorker   *worker.CatalogImportWorker
	geocodeWorker  *worker.GeocodingWorker
}

type config struct {
	addr        string
	env         string
	apiURL      string
	frontendURL string
	staticURL   string
	phoneRegion string
	sessionTTL  time.Duration
	rateLimiter ratelimiter.Config
	mongo       mongoConfig
	rabbitMQ    rabbitMQConfig
	redis       redisConfig
	geocoder    geocoderConfig
	googleCreds string
	admin       adminConfig
}

type mongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type rabbitMQConfig struct {
	URL           string
	MaxRetries    int
	RetryDelay    time.Duration
	PrefetchCount int
}

type redisConfig struct {
	Addr     string
	Password string
	DB       int
}

type geocoderConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type adminConfig struct {
	Username string
	Password string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)

	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{app.config.frontendURL},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}).Handler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		r.Get("/products", app.listProductsHandler)
		r.Get("/banners", app.listBannersHandler)
		r.Get("/menu/qr", app.menuQRHandler)

		r.Post("/orders", app.createOrderHandler)

		r.Post("/manager/login", app.loginHandler)
		r.Post("/manager/logout", app.logoutHandler)

		r.Group(func(r chi.Router) {
			r.Use(app.managerOnly)

			r.Get("/manager/restaurants", app.listRestaurantsHandler)
			r.Get("/manager/products", app.productsMatrixHandler)
			r.Get("/manager/orders", app.ordersReportHandler)
			r.Post("/manager/orders/{order_id}/restaurant", app.assignOrderRestaurantHandler)
			r.Post("/manager/orders/{order_id}/status", app.updateOrderStatusHandler)

			r.Post("/manager/import", app.createImportTaskHandler)
			r.Get("/manager/import/{task_id}", app.getImportTaskHandler)
		})

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Title = "Star Burger"
	docs.SwaggerInfo.Description = "Food ordering API with a manager back-office"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api/v1"

	// workers
	if app.importWorker != nil {
		if err := app.importWorker.Start(); err != nil {
			return fmt.Errorf("failed to start import worker: %w", err)
		}
	}
	if app.geocodeWorker != nil {
		if err := app.geocodeWorker.Start(); err != nil {
			return fmt.Errorf("failed to start geocoding worker: %w", err)
		}
	}

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		if app.importWorker != nil {
			app.importWorker.Stop()
		}
		if app.geocodeWorker != nil {
			app.geocodeWorker.Stop()
		}

		if app.storage != nil {
			if err := app.storage.Close(ctx); err != nil {
				app.logger.Errorw("error closing MongoDB", "error", err)
			} else {
				app.logger.Info("MongoDB connection closed gracefully")
			}
		}

		if app.redis != nil {
			if err := app.redis.Close(); err != nil {
				app.logger.Errorw("error closing Redis", "error", err)
			}
		}

		if app.broker != nil {
			if err := app.broker.Close(); err != nil {
				app.logger.Errorw("error closing RabbitMQ", "error", err)
			} else {
				app.logger.Info("RabbitMQ connection closed gracefully")
			}
		}

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server have started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
