package core_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"textile-books/internal/core"

	"github.com/google/uuid"
)

// Concurrent creates on the same day must each get a distinct, gap-free
// sequence number; a collision surfaces as a duplicate-key error from the
// unique index on batch_number.
func TestChallanNumbering_ConcurrentSameDay(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	_, challans, _, _, _, _ := newServices(pool)

	const n = 8
	numbers := make(chan string, n)
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wc, err := challans.CreateWeaverChallan(ctx, core.WeaverChallanInput{
				ChallanDate: day("2025-02-01"),
				Quantity:    dec("100"),
			})
			if err != nil {
				errs <- err
				return
			}
			numbers <- wc.BatchNumber
		}()
	}
	wg.Wait()
	close(numbers)
	close(errs)

	for err := range errs {
		t.Fatalf("concurrent create failed: %v", err)
	}
	seen := map[string]bool{}
	for bn := range numbers {
		if seen[bn] {
			t.Fatalf("duplicate batch number %s", bn)
		}
		seen[bn] = true
	}
	for i := 1; i <= n; i++ {
		want := fmt.Sprintf("BN20250201%03d", i)
		if !seen[want] {
			t.Errorf("sequence has a gap: missing %s", want)
		}
	}
}

func TestStitchingNumbering_ConcurrentSameDay(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	_, challans, stitching, _, _, _ := newServices(pool)

	wc, err := challans.CreateWeaverChallan(ctx, core.WeaverChallanInput{
		ChallanDate: day("2025-02-01"),
		Quantity:    dec("500"),
	})
	if err != nil {
		t.Fatalf("CreateWeaverChallan failed: %v", err)
	}

	const n = 8
	numbers := make(chan string, n)
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ic, err := stitching.CreateIsteachingChallan(ctx, core.IsteachingChallanInput{
				ChallanDate:  day("2025-02-02"),
				BatchNumbers: []string{wc.BatchNumber},
				Quantity:     10,
			})
			if err != nil {
				errs <- err
				return
			}
			numbers <- ic.ChallanNumber
		}()
	}
	wg.Wait()
	close(numbers)
	close(errs)

	for err := range errs {
		t.Fatalf("concurrent create failed: %v", err)
	}
	seen := map[string]bool{}
	for cn := range numbers {
		if seen[cn] {
			t.Fatalf("duplicate challan number %s", cn)
		}
		seen[cn] = true
	}
	if len(seen) != n {
		t.Fatalf("got %d challan numbers, want %d", len(seen), n)
	}
}

// Approving different draft orders concurrently must keep the per-year
// numbering gapless: each approval gets its own PO-{yyyy}-{seq}.
func TestPONumbering_ConcurrentApprovals(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	ledgers, _, _, _, _, _ := newServices(pool)
	orders := core.NewPurchaseOrderService(pool)

	ledger, err := ledgers.CreateLedger(ctx, core.LedgerInput{
		LedgerCode: "L-" + uuid.NewString()[:8], Name: "Test Supplier",
	})
	if err != nil {
		t.Fatalf("CreateLedger failed: %v", err)
	}

	const n = 6
	poDate := day("2025-03-01")
	ids := make([]int, 0, n)
	for i := 0; i < n; i++ {
		po, err := orders.CreatePO(ctx, ledger.LedgerCode, poDate,
			[]core.PurchaseOrderLineInput{
				{Description: "grey cloth", Quantity: dec("100"), UnitCost: dec("42")},
			}, "")
		if err != nil {
			t.Fatalf("CreatePO failed: %v", err)
		}
		ids = append(ids, po.ID)
	}

	numbers := make(chan string, n)
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(poID int) {
			defer wg.Done()
			po, err := orders.ApprovePO(ctx, poID)
			if err != nil {
				errs <- err
				return
			}
			if po.PONumber == nil {
				errs <- fmt.Errorf("approved PO %d has no number", poID)
				return
			}
			numbers <- *po.PONumber
		}(id)
	}
	wg.Wait()
	close(numbers)
	close(errs)

	for err := range errs {
		t.Fatalf("concurrent approval failed: %v", err)
	}
	seen := map[string]bool{}
	for pn := range numbers {
		if seen[pn] {
			t.Fatalf("duplicate po number %s", pn)
		}
		seen[pn] = true
	}
	year := poDate.Format("2006")
	for i := 1; i <= n; i++ {
		want := fmt.Sprintf("PO-%s-%04d", year, i)
		if !seen[want] {
			t.Errorf("numbering has a gap: missing %s", want)
		}
	}
}
