// Package cli is a one-shot terminal adapter over the ApplicationService,
// useful for reading statements and batch reports without a browser.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"textile-books/internal/app"
)

// Run executes a one-shot CLI command and exits.
// args is os.Args[1:] — the first element is the subcommand name.
func Run(ctx context.Context, svc app.ApplicationService, args []string) {
	if len(args) == 0 {
		log.Fatal("Usage: statement <statement|batch|dashboard|ledgers> [args]")
	}

	switch args[0] {
	case "statement", "stmt", "s":
		if len(args) < 2 {
			log.Fatal("Usage: statement statement <ledger-code>")
		}
		result, err := svc.GetLedgerStatement(ctx, args[1])
		if err != nil {
			log.Fatalf("Failed to build statement: %v", err)
		}
		printStatement(result)

	case "batch", "b":
		if len(args) < 2 {
			log.Fatal("Usage: statement batch <batch-number>")
		}
		result, err := svc.GetBatchReport(ctx, args[1])
		if err != nil {
			log.Fatalf("Failed to build batch report: %v", err)
		}
		printBatchReport(result)

	case "dashboard", "dash", "d":
		result, err := svc.GetDashboard(ctx)
		if err != nil {
			log.Fatalf("Failed to build dashboard: %v", err)
		}
		printDashboard(result)

	case "ledgers", "l":
		search := ""
		if len(args) > 1 {
			search = args[1]
		}
		result, err := svc.ListLedgers(ctx, search)
		if err != nil {
			log.Fatalf("Failed to list ledgers: %v", err)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(result)

	default:
		log.Fatalf("Unknown command: %s\nAvailable: statement, batch, dashboard, ledgers", args[0])
	}
}

func printStatement(result *app.StatementResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 78))
	fmt.Printf("  %-74s\n", "LEDGER STATEMENT")
	fmt.Printf("  Ledger : %s — %s\n", result.LedgerCode, result.LedgerName)
	fmt.Println(strings.Repeat("=", 78))
	fmt.Printf("  %-12s %-24s %12s %12s %12s\n", "DATE", "DETAIL", "CREDIT", "DEBIT", "BALANCE")
	fmt.Println(strings.Repeat("-", 78))
	for _, line := range result.Lines {
		fmt.Printf("  %-12s %-24s %12s %12s %12s\n",
			line.Date, truncate(line.Detail, 24), line.Credit, line.Debit, line.Balance)
	}
	fmt.Println(strings.Repeat("-", 78))
	fmt.Printf("  %-37s %12s %12s %12s\n", "TOTAL", result.TotalCredit, result.TotalDebit, result.Balance)
	fmt.Println(strings.Repeat("=", 78))
	fmt.Println()
}

func printBatchReport(result *app.BatchReportResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 62))
	fmt.Printf("  BATCH REPORT  %s\n", result.WeaverChallan.BatchNumber)
	fmt.Println(strings.Repeat("=", 62))
	fmt.Printf("  %-28s %s m\n", "Received", result.WeaverChallan.Quantity)
	fmt.Printf("  %-28s %s m\n", "Total shorting", result.TotalShorting)
	fmt.Printf("  %-28s %s m\n", "Remaining", result.RemainingQuantity)
	fmt.Printf("  %-28s %d pcs\n", "Stitched", result.TotalStitching)
	fmt.Printf("  %-28s %s\n", "Total expenses", result.TotalExpenses)
	fmt.Printf("  %-28s good=%d bad=%d wastage=%d shorting=%d\n", "Classification",
		result.GoodPieces, result.BadPieces, result.WastagePieces, result.ShortingPieces)
	if result.CostPerUnitDefined {
		fmt.Printf("  %-28s %s\n", "Cost per unit", result.CostPerUnit)
	}
	fmt.Printf("  %-28s %s%%\n", "Utilization", result.UtilizationRate)
	fmt.Println(strings.Repeat("=", 62))
	fmt.Println()
}

func printDashboard(result *app.DashboardResult) {
	fmt.Println()
	fmt.Printf("  %-12s %-28s %12s %12s %12s\n", "CODE", "NAME", "CREDIT", "DEBIT", "BALANCE")
	fmt.Println(strings.Repeat("-", 80))
	for _, row := range result.Ledgers {
		fmt.Printf("  %-12s %-28s %12s %12s %12s\n",
			row.LedgerCode, truncate(row.LedgerName, 28), row.TotalCredit, row.TotalDebit, row.Balance)
	}
	fmt.Println()
}

// truncate shortens s to n runes, never splitting a multi-byte character.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
