package export

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/munimji/ledger/internal/ledger"
	"github.com/munimji/ledger/internal/repo"
	"github.com/munimji/ledger/internal/store"
)

func newTestRepo(t *testing.T) *repo.Repo {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return repo.New(st)
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testItems() []ledger.InventoryItem {
	return []ledger.InventoryItem{
		{Name: "Rice 5kg", Quantity: 40, BuyPrice: d("380"), SellPrice: d("450"), Barcode: "8901234500017"},
		{Name: "Sugar 1kg", Quantity: 120, BuyPrice: d("38.50"), SellPrice: d("45"), Barcode: ""},
	}
}

func TestInventoryCSV_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteInventoryCSV(&buf, testItems()))

	r := newTestRepo(t)
	n, err := ReadInventoryCSV(context.Background(), r, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	items, err := r.Items(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	byName := map[string]ledger.InventoryItem{}
	for _, it := range items {
		byName[it.Name] = it
	}
	rice := byName["Rice 5kg"]
	assert.Equal(t, int64(40), rice.Quantity)
	assert.True(t, rice.BuyPrice.Equal(d("380")))
	assert.True(t, rice.SellPrice.Equal(d("450")))
	assert.Equal(t, "8901234500017", rice.Barcode)
	assert.Equal(t, "", byName["Sugar 1kg"].Barcode)
}

func TestReadInventoryCSV_BadQuantityReportsRow(t *testing.T) {
	in := strings.Join([]string{
		strings.Join(inventoryHeader, ","),
		"Rice 5kg,40,380,450,",
		"Sugar 1kg,lots,38.50,45,",
	}, "\n")

	r := newTestRepo(t)
	n, err := ReadInventoryCSV(context.Background(), r, strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
	assert.Equal(t, 1, n)

	items, err := r.Items(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestReadInventoryCSV_EmptyBodyInsertsNothing(t *testing.T) {
	r := newTestRepo(t)
	n, err := ReadInventoryCSV(context.Background(), r,
		strings.NewReader(strings.Join(inventoryHeader, ",")+"\n"))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestTransactionsCSV_RoundTrip(t *testing.T) {
	day := time.Date(2026, time.April, 12, 0, 0, 0, 0, time.UTC)
	txns := []ledger.Transaction{
		{
			Type: ledger.TxnSale, PartyName: "Gupta Stores", BillNo: "S-101",
			Amount: d("1000"), IsCredit: false, Date: day, ItemName: "Rice 5kg",
			GSTRate: d("18"), GSTAmount: d("180"), CGST: d("90"), SGST: d("90"),
			IGST: d("0"), TotalWithTax: d("1180"), Discount: d("0"),
			PaymentMethod: "Cash", Notes: "counter sale",
		},
		{
			Type: ledger.TxnExpense, PartyName: "MSEB", BillNo: "",
			Amount: d("750"), IsCredit: true, Date: day, GSTRate: d("0"),
			GSTAmount: d("0"), CGST: d("0"), SGST: d("0"), IGST: d("0"),
			TotalWithTax: d("750"), Discount: d("0"), PaymentMethod: "Cash",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTransactionsCSV(&buf, txns))

	r := newTestRepo(t)
	n, err := ReadTransactionsCSV(context.Background(), r, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := r.Transactions(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	byParty := map[string]ledger.Transaction{}
	for _, tx := range got {
		byParty[tx.PartyName] = tx
	}
	sale := byParty["Gupta Stores"]
	assert.Equal(t, ledger.TxnSale, sale.Type)
	assert.True(t, sale.TotalWithTax.Equal(d("1180")))
	assert.False(t, sale.IsCredit)
	assert.Equal(t, day, sale.Date.UTC())
	assert.True(t, byParty["MSEB"].IsCredit)
}

func TestInventoryXLSX_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stock.xlsx")
	require.NoError(t, WriteInventoryXLSX(path, testItems()))

	r := newTestRepo(t)
	n, err := ReadInventoryXLSX(context.Background(), r, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	items, err := r.Items(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	byName := map[string]ledger.InventoryItem{}
	for _, it := range items {
		byName[it.Name] = it
	}
	assert.True(t, byName["Sugar 1kg"].BuyPrice.Equal(d("38.50")))
	assert.Equal(t, int64(120), byName["Sugar 1kg"].Quantity)
}

func TestReadInventoryXLSX_MissingFile(t *testing.T) {
	r := newTestRepo(t)
	_, err := ReadInventoryXLSX(context.Background(), r,
		filepath.Join(t.TempDir(), "absent.xlsx"))
	require.Error(t, err)
}
