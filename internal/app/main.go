package app

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/Egor213/LogiGraph/internal/config"
	graphqlv1 "github.com/Egor213/LogiGraph/internal/controller/graphql/v1"
	grpcv1 "github.com/Egor213/LogiGraph/internal/controller/grpc/v1"
	httpv1 "github.com/Egor213/LogiGraph/internal/controller/http"
	"github.com/Egor213/LogiGraph/internal/metrics"
	errorsUtils "github.com/Egor213/LogiGraph/pkg/errors"
	"github.com/Egor213/LogiGraph/pkg/grpcserver"
	"github.com/Egor213/LogiGraph/pkg/httpserver"
	"github.com/labstack/echo/v4"

	log "github.com/sirupsen/logrus"
)

func httpOptions(cfg config.HTTP) []httpserver.Option {
	return []httpserver.Option{
		httpserver.Port(cfg.Port),
		httpserver.ReadTimeout(cfg.ReadTimeout),
		httpserver.WriteTimeout(cfg.WriteTimeout),
		httpserver.ShutdownTimeout(cfg.ShutdownTimeout),
	}
}

func Run() {
	counters := metrics.New()

	rt, err := setup(counters)
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	defer rt.close()
	cfg := rt.cfg

	// GraphQL server
	graphqlHandler, err := graphqlv1.NewHandler(rt.services, counters)
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	log.Infof("Starting HTTP server...")
	log.Debugf("Server port: %s", cfg.HTTP.Port)
	apiHandler := echo.New()
	httpv1.ConfigureRouter(apiHandler, rt.services, graphqlHandler)
	httpServer := httpserver.New(apiHandler, httpOptions(cfg.HTTP)...)

	// gRPC Server
	log.Infof("Starting gRPC server...")
	log.Debugf("Server port: %s", cfg.GRPC.Port)
	grpcServer, err := grpcserver.New(grpcv1.RegisterServices(rt.services),
		grpcserver.WithPort(cfg.GRPC.Port),
		grpcserver.WithShutdownTimeout(cfg.GRPC.ShutdownTimeout),
	)
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Prometheus server
	log.Infof("Starting metrics server...")
	log.Debugf("Server port: %s", cfg.Prometheus.Port)
	metricsHandler := echo.New()
	metricsHandler.HideBanner = true
	metrics.ConfigureRouter(metricsHandler)
	metricsServer := httpserver.New(metricsHandler,
		httpserver.Port(cfg.Prometheus.Port),
		httpserver.ShutdownTimeout(cfg.HTTP.ShutdownTimeout),
	)

	// Waiting signal
	log.Info("Configuring graceful shutdown")
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app - Run - signal: " + s.String())
	case err := <-httpServer.Notify():
		log.Error(errorsUtils.WrapPathErr(err))
	case err := <-metricsServer.Notify():
		log.Error(errorsUtils.WrapPathErr(err))
	case err := <-grpcServer.Notify():
		log.Error(errorsUtils.WrapPathErr(err))
	}

	// Graceful shutdown
	log.Info("Shutting down...")
	if err := httpServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	if err := metricsServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	grpcServer.Shutdown()
}
