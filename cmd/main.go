package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"eats-marketplace/internal/api"
	"eats-marketplace/internal/auth"
	"eats-marketplace/internal/config"
	"eats-marketplace/internal/database"
	"eats-marketplace/internal/logger"
	"eats-marketplace/internal/mail"
	"eats-marketplace/internal/messaging"
	"eats-marketplace/internal/services/dispatch"
	"eats-marketplace/internal/services/notification"
	"eats-marketplace/internal/services/order"
	"eats-marketplace/internal/services/payment"
	"eats-marketplace/internal/services/restaurant"
	"eats-marketplace/internal/services/user"
)

func main() {
	var (
		mode              = flag.String("mode", "", "Service mode (api-server, dispatch-worker, notification-subscriber)")
		port              = flag.Int("port", 3000, "HTTP port")
		courierName       = flag.String("courier-name", "", "Courier name (required for dispatch-worker mode)")
		courierUserID     = flag.Int64("courier-user-id", 0, "Courier user id (required for dispatch-worker mode)")
		heartbeatInterval = flag.Int("heartbeat-interval", 30, "Heartbeat interval in seconds")
		prefetch          = flag.Int("prefetch", 1, "RabbitMQ prefetch count")
	)
	flag.Parse()

	if *mode == "" {
		fmt.Fprintf(os.Stderr, "Error: --mode flag is required\n")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(*mode)
	requestID := logger.GenerateRequestID()

	log.Info("service_started", fmt.Sprintf("Starting %s", *mode), requestID, map[string]interface{}{
		"mode": *mode,
		"port": *port,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("graceful_shutdown", "Received shutdown signal", requestID, nil)
		cancel()
	}()

	switch *mode {
	case "api-server":
		if err := runAPIServer(ctx, cfg, log, *port); err != nil {
			log.Error("service_failed", "API server failed", requestID, err, nil)
			os.Exit(1)
		}
	case "dispatch-worker":
		if *courierName == "" || *courierUserID == 0 {
			log.Error("validation_failed", "courier-name and courier-user-id are required for dispatch-worker mode", requestID, nil, nil)
			os.Exit(1)
		}
		if err := runDispatchWorker(ctx, cfg, log, *courierName, *courierUserID, *heartbeatInterval, *prefetch); err != nil {
			log.Error("service_failed", "Dispatch worker failed", requestID, err, nil)
			os.Exit(1)
		}
	case "notification-subscriber":
		if err := runNotificationSubscriber(ctx, cfg, log, *prefetch); err != nil {
			log.Error("service_failed", "Notification subscriber failed", requestID, err, nil)
			os.Exit(1)
		}
	default:
		log.Error("validation_failed", fmt.Sprintf("Unknown mode: %s", *mode), requestID, nil, nil)
		os.Exit(1)
	}

	log.Info("service_stopped", "Service stopped gracefully", requestID, nil)
}

// runAPIServer wires the stores, services, and handlers and serves HTTP
func runAPIServer(ctx context.Context, cfg *config.Config, log *logger.Logger, port int) error {
	requestID := logger.GenerateRequestID()

	db, err := database.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	log.Info("db_connected", "Connected to PostgreSQL database", requestID, nil)

	if err := db.RunMigrations(ctx, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	conn, err := messaging.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize messaging: %w", err)
	}
	defer conn.Close()

	log.Info("rabbitmq_connected", "Connected to RabbitMQ", requestID, nil)

	publisher := messaging.NewPublisher(conn, log)

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr(),
		DB:   cfg.Redis.DB,
	})
	defer redisClient.Close()

	tokens := auth.NewTokenManager(cfg.JWT.Secret)
	mailer := mail.NewMailgun(cfg, log)

	userService := user.NewService(user.NewPostgresStore(db), tokens, mailer, log)
	catalogService := restaurant.NewService(
		restaurant.NewPostgresStore(db),
		restaurant.NewCache(redisClient, 5*time.Minute),
		log,
	)
	orderService := order.NewService(order.NewPostgresStore(db), catalogService, publisher, log)
	paymentService := payment.NewService(payment.NewPostgresStore(db), catalogService, log)

	router := api.NewRouter(log, tokens, userService,
		user.NewHandler(userService, log),
		restaurant.NewHandler(catalogService, log),
		order.NewHandler(orderService, log),
		payment.NewHandler(paymentService, log),
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: router,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("service_started", fmt.Sprintf("API server started on port %d", port), requestID, map[string]interface{}{
			"port": port,
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	group.Go(func() error {
		paymentService.RunPromotionSweeper(groupCtx, time.Hour)
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})

	return group.Wait()
}

// runDispatchWorker runs a courier's dispatch worker
func runDispatchWorker(ctx context.Context, cfg *config.Config, log *logger.Logger, courierName string, courierUserID int64, heartbeatInterval, prefetch int) error {
	db, err := database.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	conn, err := messaging.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize messaging: %w", err)
	}
	defer conn.Close()

	consumer := messaging.NewConsumer(conn, log, messaging.CookedOrdersQueue, courierName, prefetch)
	publisher := messaging.NewPublisher(conn, log)

	worker := dispatch.NewWorker(courierName, courierUserID,
		time.Duration(heartbeatInterval)*time.Second, db, consumer, publisher, log)

	return worker.Start(ctx)
}

// runNotificationSubscriber runs the order update subscriber
func runNotificationSubscriber(ctx context.Context, cfg *config.Config, log *logger.Logger, prefetch int) error {
	conn, err := messaging.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize messaging: %w", err)
	}
	defer conn.Close()

	consumer := messaging.NewConsumer(conn, log, messaging.OrderUpdatesQueue, "notification-subscriber", prefetch)
	subscriber := notification.NewSubscriber(consumer, log)

	return subscriber.Start(ctx)
}
