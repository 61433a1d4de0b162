// statement is a one-shot CLI for reading ledger statements, batch reports,
// and the dashboard from the terminal.
//
// Usage:
//
//	statement statement <ledger-code>
//	statement batch <batch-number>
//	statement dashboard
//	statement ledgers [search]
package main

import (
	"context"
	"log"
	"os"

	"textile-books/internal/adapters/cli"
	"textile-books/internal/app"
	"textile-books/internal/core"
	"textile-books/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("database: %v", err)
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

	cli.Run(ctx, svc, os.Args[1:])
}
