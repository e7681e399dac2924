package main

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/orderdesk/config"
	"github.com/ray-remotestate/orderdesk/database"
	"github.com/ray-remotestate/orderdesk/database/dbhelper"
	"github.com/ray-remotestate/orderdesk/handlers"
	"github.com/ray-remotestate/orderdesk/server"
	"github.com/ray-remotestate/orderdesk/services"
	"github.com/ray-remotestate/orderdesk/storage"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Init()

	db, err := database.ConnectAndMigrate(cfg.DatabaseURL, cfg.MigrationsDir)
	if err != nil {
		logrus.Panicf("failed to initialize database, error: %v", err)
	}
	logrus.Println("migration is successful")

	store := dbhelper.New(db)
	images := storage.NewDiskStore(cfg.UploadDir, cfg.PublicBaseURL)

	svr := server.SetupRoutes(server.Handlers{
		Auth:       handlers.NewAuthHandler(services.NewUserService(store)),
		Categories: handlers.NewCategoryHandler(services.NewCategoryService(store)),
		Suppliers:  handlers.NewSupplierHandler(services.NewSupplierService(store)),
		Products:   handlers.NewProductHandler(services.NewProductService(store, images)),
		Orders:     handlers.NewOrderHandler(services.NewOrderService(store)),
		OrderItems: handlers.NewOrderItemHandler(services.NewOrderItemService(store)),
	})

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logrus.Infof("listening on %s", cfg.Port)
		if err := svr.Run(cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server stopped unexpectedly")
		}
	}()

	<-done

	logrus.Info("shutting down...")
	var errs *multierror.Error
	if err := svr.Shutdown(shutdownTimeout); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := db.Close(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := errs.ErrorOrNil(); err != nil {
		logrus.WithError(err).Error("shutdown finished with errors")
		os.Exit(1)
	}

	logrus.Info("system is shut ..zzz")
}
