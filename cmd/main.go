package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/shiplogix/shipping-service/internal/app"
	"github.com/shiplogix/shipping-service/internal/config"
	"github.com/shiplogix/shipping-service/internal/events"
	"github.com/shiplogix/shipping-service/internal/handler"
	"github.com/shiplogix/shipping-service/internal/pincode"
	"github.com/shiplogix/shipping-service/internal/postgres"
	"github.com/shiplogix/shipping-service/internal/repo"
	"github.com/shiplogix/shipping-service/internal/service"

	_ "github.com/shiplogix/shipping-service/docs"

	"github.com/joho/godotenv"
)

// @title           Shipping Order Service API
// @version         1.0
// @description     Order management with pincode verification and shipping cost calculation
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to run migrations", postgres.Migrate(ctx, db))

	orderRepo := repo.NewPostgresRepo(db)
	verifier := pincode.NewVerifier(logger, conf.Pincode)

	publisher := events.NewPublisher(logger, conf.Kafka)
	defer publisher.Close()

	orderService := service.NewOrderService(logger, orderRepo, verifier, publisher)
	httpHandler := handler.NewHTTPHandler(logger, orderService, verifier)

	app := app.New(logger, conf)
	app.SetHTTPHandlers(httpHandler)

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
