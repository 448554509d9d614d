package main

import (
	"context"
	"fmt"

	"github.com/brsantos/burgerhall/internal/adapter/config"
	"github.com/brsantos/burgerhall/internal/adapter/handler/http"
	"github.com/brsantos/burgerhall/internal/adapter/logger"
	"github.com/brsantos/burgerhall/internal/adapter/storage"
	"github.com/brsantos/burgerhall/internal/adapter/storage/repository"
	"github.com/brsantos/burgerhall/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	orderRepo, err := repository.NewOrderRepository(db)
	if err != nil {
		log.Error("order repo creating error", zap.Error(err))
		return
	}
	productRepo, err := repository.NewProductRepository(db)
	if err != nil {
		log.Error("product repo creating error", zap.Error(err))
		return
	}

	orderSvc, err := service.NewOrderService(orderRepo, productRepo, log.Named("OrderService"))
	if err != nil {
		log.Error("order service creating error", zap.Error(err))
		return
	}
	productSvc, err := service.NewProductService(productRepo, log.Named("ProductService"))
	if err != nil {
		log.Error("product service creating error", zap.Error(err))
		return
	}

	orderHandler, err := http.NewOrderHandler(orderSvc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	productHandler, err := http.NewProductHandler(productSvc, log.Named("Product handler"))
	if err != nil {
		log.Error("product handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, orderHandler, productHandler)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
