package main

import (
	"context"
	"net/http"
	"os"

	webAdapter "textile-books/internal/adapters/web"
	"textile-books/internal/app"
	"textile-books/internal/core"
	"textile-books/internal/db"
	"textile-books/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		logger.L().Fatalf("database: %v", err)
	}
	defer pool.Close()

	users := core.NewUserService(pool)
	ledgers := core.NewLedgerService(pool)
	challans := core.NewChallanService(pool)
	stitching := core.NewStitchingService(pool)
	expenses := core.NewExpenseService(pool)
	vouchers := core.NewVoucherService(pool)
	products := core.NewProductService(pool)
	orders := core.NewPurchaseOrderService(pool)
	reporting := core.NewReportingService(ledgers, challans, stitching, expenses, vouchers)

	svc := app.NewAppService(users, ledgers, challans, stitching, expenses, vouchers, products, orders, reporting)

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.L().Fatal("JWT_SECRET is not set")
	}

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	handler := webAdapter.NewHandler(svc, allowedOrigins, jwtSecret)

	logger.L().Infof("server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		logger.L().Fatalf("server: %v", err)
	}
}
