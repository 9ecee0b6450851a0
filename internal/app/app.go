// Package app wires configuration, storage, the session and the HTTP routes
// into a runnable server.
package app

import (
	"fmt"
	"time"

	"inventory/internal/config"
	"inventory/internal/data"
	"inventory/internal/database"
	"inventory/internal/handlers"
	"inventory/internal/middleware"
	"inventory/internal/repositories"
	"inventory/internal/services"
	"inventory/internal/session"
	"inventory/pkg/rabbitmq"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App is the assembled server and the resources it owns.
type App struct {
	Fiber    *fiber.App
	Session  *session.Session
	Products *services.ProductService

	db       *gorm.DB
	mqClient *rabbitmq.Client
	log      *logrus.Logger
}

// New builds an App from cfg. Call Close to release its resources.
func New(cfg config.Config, logger *logrus.Logger) (*App, error) {
	a := &App{log: logger}

	repo, err := a.openRepository(cfg)
	if err != nil {
		return nil, err
	}

	opts := []services.Option{services.WithLogger(logger.WithField("component", "products"))}
	if cfg.RabbitMQURL != "" {
		a.mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to initialize RabbitMQ client: %w", err)
		}
		opts = append(opts, services.WithEventPublisher(a.mqClient))
		if err := a.mqClient.ConsumeProductEvents(rabbitmq.LogProductEvent); err != nil {
			logger.WithError(err).Warn("product event consumer not started")
		}
	} else {
		logger.Info("RABBITMQ_URL not set, product events disabled")
	}
	a.Products = services.NewProductService(repo, opts...)

	if cfg.SeedProducts {
		if err := a.Products.Seed(data.Products()); err != nil {
			a.Close()
			return nil, err
		}
	}

	a.Session = session.New(a.Products,
		session.WithSearchDelay(cfg.DebounceWindow),
		session.WithLogger(logger.WithField("component", "session")),
	)
	a.Fiber = newRouter(a.Session, a.Products, logger)
	return a, nil
}

func (a *App) openRepository(cfg config.Config) (repositories.ProductRepository, error) {
	if cfg.StoreDriver == config.DriverMemory {
		return repositories.NewMemoryProductRepository(), nil
	}
	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	a.db = db
	repo, err := repositories.NewGORMProductRepository(db)
	if err != nil {
		a.Close()
		return nil, err
	}
	return repo, nil
}

func newRouter(s *session.Session, products *services.ProductService, logger *logrus.Logger) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recover.New())
	app.Use(middleware.RequestLogger(logger))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	apiV1 := app.Group("/api/v1")
	handlers.NewProductHandler(s, products).RegisterRoutes(apiV1)
	handlers.NewViewHandler(s).RegisterRoutes(apiV1)
	handlers.NewFormHandler(s).RegisterRoutes(apiV1)
	return app
}

// Close stops the session and releases the database and broker connections.
func (a *App) Close() {
	if a.Session != nil {
		a.Session.Close()
	}
	if a.mqClient != nil {
		if err := a.mqClient.Close(); err != nil {
			a.log.WithError(err).Warn("error closing RabbitMQ client")
		}
	}
	if a.db != nil {
		if err := database.Close(a.db); err != nil {
			a.log.WithError(err).Warn("error closing database")
		}
	}
}
