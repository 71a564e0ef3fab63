package bootstrap

import (
	"context"
	"log"
	"time"

	"cashbook-be/internal/config"
	"cashbook-be/internal/controller"
	"cashbook-be/internal/pkg/logger"
	"cashbook-be/internal/repository/contract"
	"cashbook-be/internal/repository/implementation"
	"cashbook-be/internal/repository/memory"
	"cashbook-be/internal/repository/unitofwork"
	"cashbook-be/internal/service"
	"cashbook-be/pkg/ledger/access"
	"cashbook-be/pkg/ledger/pagination"
	"cashbook-be/pkg/ledger/totals"

	pktNats "cashbook-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	Logger logger.ILogger

	// Controllers
	AuthController     controller.IAuthController
	BookController     controller.IBookController
	CategoryController controller.ICategoryController
	RecordController   controller.IRecordController

	// Consumed by the JWT middleware
	AuthService service.IAuthService

	// Background Services (Exposed for main.go to run)
	ActivityConsumer service.IActivityConsumerService

	closers []func() error
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	return newContainer(db, cfg, sysLogger, logger.NewIsolatedLogger(cfg.App.ActivityLogPath))
}

// NewContainerWithLogger builds the graph around an existing logger. Tests pass a nop logger.
func NewContainerWithLogger(db *gorm.DB, cfg *config.Config, sysLogger logger.ILogger) *Container {
	return newContainer(db, cfg, sysLogger, sysLogger)
}

func newContainer(db *gorm.DB, cfg *config.Config, sysLogger, activityLogger logger.ILogger) *Container {
	c := &Container{Logger: sysLogger}
	c.closers = append(c.closers, activityLogger.Sync)

	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 256},
		watermillLogger,
	)
	c.closers = append(c.closers, pubSub.Close)

	// 3. Infrastructure
	denylist := newTokenDenylist(cfg.Auth.RedisURL, c)

	var forwarder service.EventForwarder
	if cfg.Messaging.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.Messaging.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			forwarder = natsPub
			c.closers = append(c.closers, func() error { natsPub.Close(); return nil })
		}
	}

	// 4. Ledger engine
	resolver := access.NewResolver()
	aggregator := totals.NewAggregator()
	paginator := pagination.NewPaginator()

	// 5. Services
	publisherService := service.NewPublisherService(cfg.Messaging.ActivityTopic, pubSub)
	c.ActivityConsumer = service.NewActivityConsumerService(
		pubSub,
		cfg.Messaging.ActivityTopic,
		uowFactory,
		forwarder,
		activityLogger,
	)

	c.AuthService = service.NewAuthService(uowFactory, denylist, cfg.Auth.JwtSecret, cfg.Auth.TokenTTL, sysLogger)
	bookService := service.NewBookService(uowFactory, resolver, publisherService, sysLogger)
	categoryService := service.NewCategoryService(uowFactory, resolver, publisherService, sysLogger)
	recordService := service.NewRecordService(uowFactory, resolver, aggregator, paginator, publisherService, sysLogger)

	// 6. Controllers
	c.AuthController = controller.NewAuthController(c.AuthService)
	c.BookController = controller.NewBookController(bookService)
	c.CategoryController = controller.NewCategoryController(categoryService)
	c.RecordController = controller.NewRecordController(recordService)

	return c
}

// newTokenDenylist prefers Redis so revocations are shared across replicas.
func newTokenDenylist(redisURL string, c *Container) contract.TokenDenylist {
	if redisURL == "" {
		log.Printf("[INFO] REDIS_URL not set, keeping revoked tokens in memory")
		return memory.NewTokenDenylist()
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: redisURL,
		}
	}
	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Falling back to in-memory denylist", err)
		_ = rdb.Close()
		return memory.NewTokenDenylist()
	}

	c.closers = append(c.closers, rdb.Close)
	return implementation.NewRedisTokenDenylist(rdb)
}

// Close releases the bus and external clients. The database is owned by main.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			log.Printf("[WARN] Failed to close resource: %v", err)
		}
	}
	_ = c.Logger.Sync()
}
