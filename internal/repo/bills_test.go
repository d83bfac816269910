package repo

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/munimji/ledger/internal/ledger"
)

func TestInsertBill_ReturnsIDSynchronously(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	bill := &ledger.Bill{
		Type:        ledger.BillSale,
		CustomerID:  1,
		Date:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		TotalAmount: d("1000"),
		PaymentMode: ledger.PaymentCash,
		Status:      ledger.BillCompleted,
	}
	id, err := r.InsertBill(ctx, bill)
	require.NoError(t, err)
	require.NotZero(t, id)
	assert.Equal(t, id, bill.ID)

	// The returned id is usable immediately for attaching items.
	items := []ledger.BillItem{
		{BillID: id, ItemID: 7, ItemName: "Tea 250g", Quantity: d("2"), UnitPrice: d("120"), ItemTotal: d("240")},
		{BillID: id, ItemID: 9, ItemName: "Sugar 1kg", Quantity: d("1"), UnitPrice: d("45"), ItemTotal: d("45")},
	}
	require.NoError(t, r.InsertBillItems(ctx, items))

	got, err := r.BillItems(ctx, id)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestInsertBill_GeneratesBillNumberWhenBlank(t *testing.T) {
	r := newTestRepo(t)

	bill := &ledger.Bill{Type: ledger.BillSale}
	_, err := r.InsertBill(context.Background(), bill)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(bill.BillNumber, "SALE-"), "billNumber = %q", bill.BillNumber)
	assert.Equal(t, ledger.BillCompleted, bill.Status)
	assert.Equal(t, ledger.PaymentCash, bill.PaymentMode)
}

func TestBillsByType_SeparatesSalesAndPurchases(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	for _, b := range []ledger.Bill{
		{Type: ledger.BillSale, Date: time.Now(), TotalAmount: d("100")},
		{Type: ledger.BillSale, Date: time.Now(), TotalAmount: d("200")},
		{Type: ledger.BillPurchase, Date: time.Now(), TotalAmount: d("300")},
	} {
		b := b
		_, err := r.InsertBill(ctx, &b)
		require.NoError(t, err)
	}

	sales, err := r.BillsByType(ctx, ledger.BillSale)
	require.NoError(t, err)
	assert.Len(t, sales, 2)

	purchases, err := r.BillsByType(ctx, ledger.BillPurchase)
	require.NoError(t, err)
	assert.Len(t, purchases, 1)
}

func TestDeleteBill_DoesNotCascadeToItems(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	bill := &ledger.Bill{Type: ledger.BillSale}
	id, err := r.InsertBill(ctx, bill)
	require.NoError(t, err)

	item := &ledger.BillItem{BillID: id, ItemName: "Tea 250g", Quantity: d("1"), UnitPrice: d("120"), ItemTotal: d("120")}
	require.NoError(t, r.InsertBillItem(ctx, item))

	require.NoError(t, r.DeleteBill(ctx, id))

	// Orphaned items remain until deleted explicitly.
	orphans, err := r.BillItems(ctx, id)
	require.NoError(t, err)
	require.Len(t, orphans, 1)

	require.NoError(t, r.DeleteBillItem(ctx, orphans[0].ID))
	left, err := r.BillItems(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestUpdateBillItem_Rewrite(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	bill := &ledger.Bill{Type: ledger.BillPurchase}
	id, err := r.InsertBill(ctx, bill)
	require.NoError(t, err)

	item := &ledger.BillItem{BillID: id, ItemName: "Rice 5kg", Quantity: d("2"), UnitPrice: d("300"), ItemTotal: d("600")}
	require.NoError(t, r.InsertBillItem(ctx, item))

	item.Quantity = d("3")
	item.ItemTotal = d("900")
	require.NoError(t, r.UpdateBillItem(ctx, *item))

	got, err := r.BillItems(ctx, id)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].ItemTotal.Equal(d("900")))
}
