package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"food-order-service/internal/config"
	handlers "food-order-service/internal/controllers/http"
	"food-order-service/internal/infra"
	"food-order-service/internal/infra/cache"
	mmysql "food-order-service/internal/infra/mysql"
	"food-order-service/internal/infra/rabbitmq"
	"food-order-service/internal/logging"
	mysqlrepo "food-order-service/internal/repository/mysql"
	"food-order-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	app := &cli.App{
		Name:  "order-service",
		Usage: "order lifecycle and vendor analytics",
		Before: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
				return err
			}
			c.App.Metadata = map[string]interface{}{"config": cfg}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "create or update the database schema",
				Action: migrate,
			},
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("order-service exited")
	}
}

func configFrom(c *cli.Context) *config.Config {
	return c.App.Metadata["config"].(*config.Config)
}

func migrate(c *cli.Context) error {
	cfg := configFrom(c)
	db, err := mmysql.NewMySQL(cfg.MySQL)
	if err != nil {
		return errors.Wrap(err, "db: connect")
	}
	if err := mmysql.Migrate(db); err != nil {
		return err
	}
	log.Info("schema migrated")
	return nil
}

func serve(c *cli.Context) error {
	cfg := configFrom(c)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	db, err := mmysql.NewMySQL(cfg.MySQL)
	if err != nil {
		return errors.Wrap(err, "db: connect")
	}
	if err := mmysql.Migrate(db); err != nil {
		return err
	}
	repo := mysqlrepo.NewOrderRepository(db)

	var directory infra.DirectoryClientInterface = infra.NewDirectoryClient(cfg.DirectoryURL, cfg.ClientTimeout)
	if cfg.Redis.Host != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addr(),
			DB:           0,
			PoolSize:     50,
			MinIdleConns: 5,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		})
		defer redisClient.Close()
		directory = cache.NewDirectoryCache(directory, redisClient, cfg.DirectoryCacheTTL)
		log.WithField("addr", cfg.Redis.Addr()).Info("directory cache enabled")
	}
	dishClient := infra.NewDishClient(cfg.DishServiceURL, cfg.ClientTimeout)

	var publisher rabbitmq.PublisherInterface = rabbitmq.NopPublisher{}
	if cfg.RabbitMQ.URL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			return errors.Wrap(err, "init publisher")
		}
		defer p.Close()
		publisher = p
	} else {
		log.Warn("RABBITMQ_URL not set, order events will not be published")
	}

	s := services.NewOrderService(repo, directory, dishClient)
	s.SetLocation(loc)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), handlers.RequestLogger())
	handlers.NewHandler(s, publisher).RegisterRoutes(r)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithField("addr", srv.Addr).Info("starting order service")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "server run")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
