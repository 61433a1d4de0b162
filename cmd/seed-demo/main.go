// seed-demo loads a small demo data set: an admin user, two ledgers, one
// receipt with shorting and stitching, an expense and a pair of vouchers.
// Run it against a freshly migrated database.
//
// Usage: go run ./cmd/seed-demo
package main

import (
	"context"
	"log"
	"time"

	"textile-books/internal/core"
	"textile-books/internal/db"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
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

	if _, err := users.CreateUser(ctx, core.UserInput{
		Username: "admin",
		Email:    "admin@example.com",
		Password: "admin12345",
		Role:     core.RoleAdmin,
	}); err != nil {
		log.Fatalf("seed admin: %v", err)
	}
	log.Println("created admin user (password: admin12345 — change it)")

	if _, err := ledgers.CreateLedger(ctx, core.LedgerInput{
		LedgerCode: "WVR-001",
		Name:       "Shree Weaving Works",
		Phone:      "9876543210",
		GSTIN:      "24ABCDE1234F1Z5",
	}); err != nil {
		log.Fatalf("seed ledger: %v", err)
	}
	if _, err := ledgers.CreateLedger(ctx, core.LedgerInput{
		LedgerCode: "STC-001",
		Name:       "Kiran Stitching Unit",
		Phone:      "9123456780",
	}); err != nil {
		log.Fatalf("seed ledger: %v", err)
	}

	vendorAmount := decimal.NewFromInt(1000)
	transport := decimal.NewFromInt(100)
	wc, err := challans.CreateWeaverChallan(ctx, core.WeaverChallanInput{
		ChallanDate:     date(2025, 1, 10),
		LedgerCode:      "WVR-001",
		Quantity:        decimal.NewFromInt(500),
		QualityDetails:  []core.QualityDetail{{Quality: "60x60", Quantity: decimal.NewFromInt(500), Rate: decimal.NewFromInt(2)}},
		VendorAmount:    &vendorAmount,
		SGST:            "9%",
		CGST:            "9%",
		IGST:            "Not Applicable",
		TransportCharge: &transport,
	})
	if err != nil {
		log.Fatalf("seed challan: %v", err)
	}
	log.Printf("created weaver challan %s", wc.BatchNumber)

	if _, err := challans.AddShorting(ctx, core.ShortingInput{
		BatchNumber: wc.BatchNumber,
		Quality:     "60x60",
		Quantity:    decimal.NewFromInt(50),
		EntryDate:   date(2025, 1, 12),
		Remark:      "damp bales",
	}); err != nil {
		log.Fatalf("seed shorting: %v", err)
	}

	topRate := decimal.NewFromInt(2)
	topQty := decimal.NewFromInt(200)
	ic, err := stitching.CreateIsteachingChallan(ctx, core.IsteachingChallanInput{
		ChallanDate:  date(2025, 1, 20),
		LedgerCode:   "STC-001",
		BatchNumbers: []string{wc.BatchNumber},
		Quantity:     100,
		TopQty:       &topQty,
		TopRate:      &topRate,
		Sizes:        []core.SizeDetail{{Size: "M", Quantity: 60}, {Size: "L", Quantity: 40}},
	})
	if err != nil {
		log.Fatalf("seed stitching: %v", err)
	}
	if err := stitching.Classify(ctx, ic.ChallanNumber, core.ClassificationGood); err != nil {
		log.Fatalf("classify stitching: %v", err)
	}
	log.Printf("created isteaching challan %s", ic.ChallanNumber)

	if _, err := expenses.AddExpense(ctx, core.ExpenseInput{
		BatchNumber: wc.BatchNumber,
		Amount:      decimal.NewFromInt(2000),
		ExpenseDate: date(2025, 1, 25),
		Reason:      "dyeing",
	}); err != nil {
		log.Fatalf("seed expense: %v", err)
	}

	if _, err := vouchers.CreateVoucher(ctx, core.PaymentVoucherInput{
		LedgerCode:  "WVR-001",
		VoucherDate: date(2025, 1, 28),
		Direction:   core.DirectionDebit,
		Amount:      decimal.NewFromInt(500),
		Purpose:     "part payment",
	}); err != nil {
		log.Fatalf("seed voucher: %v", err)
	}
	if _, err := vouchers.CreateVoucher(ctx, core.PaymentVoucherInput{
		LedgerCode:  "STC-001",
		VoucherDate: date(2025, 1, 30),
		Direction:   core.DirectionCredit,
		Amount:      decimal.NewFromInt(300),
		Purpose:     "advance",
	}); err != nil {
		log.Fatalf("seed voucher: %v", err)
	}

	log.Println("demo data loaded")
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}
