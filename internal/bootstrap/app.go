package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/AhmedGamal2004/My-Personal-final/internal/config"
	"github.com/AhmedGamal2004/My-Personal-final/internal/platform/database"
	rabbitmqClient "github.com/AhmedGamal2004/My-Personal-final/internal/platform/rabbitmq"
	redisClient "github.com/AhmedGamal2004/My-Personal-final/internal/platform/redis"
	"github.com/AhmedGamal2004/My-Personal-final/internal/repository"
	"github.com/AhmedGamal2004/My-Personal-final/internal/worker"
)

// App holds every long-lived dependency. DB is nil when no database url is
// configured; Redis and MQConn are nil when their features are disabled.
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	Redis       *redis.Client
	MQConn      *amqp.Connection
	EventWorker *worker.ContentEventWorker

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	a := &App{Config: cfg, StartedAt: time.Now()}
	if err := a.open(ctx); err != nil {
		_ = a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) open(ctx context.Context) error {
	cfg := a.Config

	if cfg.Database.Configured() {
		db, err := database.New(ctx, cfg.Database)
		if err != nil {
			return err
		}
		a.DB = db
		if err := database.Migrate(db); err != nil {
			return err
		}
	} else {
		log.Printf("FATAL ERROR: DATABASE_URL is not set; store routes will answer 500")
	}

	if cfg.Redis.Enabled() {
		client, err := redisClient.New(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		a.Redis = client
	}

	if cfg.RabbitMQ.Enabled() {
		conn, err := rabbitmqClient.New(ctx, cfg.RabbitMQ)
		if err != nil {
			return err
		}
		a.MQConn = conn

		if a.DB != nil {
			eventRepo := repository.NewEventRepository(a.DB)
			a.EventWorker = worker.NewContentEventWorker(conn, eventRepo, cfg.RabbitMQ.EventQueue)
			if err := a.EventWorker.Start(ctx); err != nil {
				return fmt.Errorf("start content event worker failed: %w", err)
			}
		}
	}
	return nil
}

func (a *App) Close() error {
	var closeErr error
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = err
		}
	}
	if a.EventWorker != nil {
		a.EventWorker.Close()
	}
	if a.MQConn != nil {
		if err := a.MQConn.Close(); err != nil {
			closeErr = err
		}
	}
	if a.DB != nil {
		sqlDB, err := a.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				closeErr = err
			}
		}
	}
	return closeErr
}
