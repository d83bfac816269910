package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// WalletID is the key of the single wallet row. The wallet table holds
// exactly one row; upserts against this id keep it that way.
const WalletID = "main"

// Cheque status values. Transitions are one-way in intended use
// (Pending to Cleared or Bounced) but the store does not enforce that.
const (
	ChequePending = "Pending"
	ChequeCleared = "Cleared"
	ChequeBounced = "Bounced"
)

// Transaction types.
const (
	TxnSale     = "Sale"
	TxnPurchase = "Purchase"
	TxnExpense  = "Expense"
	TxnIncome   = "Income"
)

// General ledger account types.
const (
	AccountAsset     = "Asset"
	AccountLiability = "Liability"
	AccountIncome    = "Income"
	AccountExpense   = "Expense"
	AccountEquity    = "Equity"
)

// Bill types.
const (
	BillSale     = "SALE"
	BillPurchase = "PURCHASE"
)

// Bill payment modes.
const (
	PaymentCash   = "CASH"
	PaymentCredit = "CREDIT"
)

// Bill statuses.
const (
	BillDraft     = "DRAFT"
	BillCompleted = "COMPLETED"
	BillCancelled = "CANCELLED"
)

// Wallet is the cash-in-hand pool. Amount may go negative (overdraft);
// consumers treat negative as a risk signal, the store does not reject it.
type Wallet struct {
	ID     string
	Amount decimal.Decimal
}

// Cheque is a received or issued cheque awaiting clearance.
// Date is the due date in display form (as entered, e.g. "2026-09-02").
type Cheque struct {
	ID        int64
	PartyName string
	Number    string
	Date      string
	Amount    decimal.Decimal
	Status    string
}

// InventoryItem tracks one stocked product. Quantity is the sole
// stock-level source of truth. Barcode is optional and not unique.
type InventoryItem struct {
	ID        int64
	Name      string
	Quantity  int64
	BuyPrice  decimal.Decimal
	SellPrice decimal.Decimal
	Barcode   string
}

// Customer is a trading party with a running outstanding balance.
// TotalDue is a denormalized cache: nothing recomputes it when
// transactions change, callers must keep it synchronized.
type Customer struct {
	ID       int64
	Name     string
	TotalDue decimal.Decimal
}

// BankAccount is a cash pool independent of the wallet.
type BankAccount struct {
	ID            int64
	Name          string
	AccountNumber string
	BankName      string
	Balance       decimal.Decimal
	IFSCCode      string
}

// Transaction is a single sale, purchase, expense or income posting with
// its GST breakdown. TotalWithTax = Amount - Discount + GSTAmount and
// GSTAmount = CGST + SGST + IGST are established by the caller at
// creation time; the store does not re-validate them.
type Transaction struct {
	ID            int64
	Type          string
	PartyName     string
	BillNo        string
	Amount        decimal.Decimal
	IsCredit      bool
	Date          time.Time
	ItemName      string
	GSTRate       decimal.Decimal
	GSTAmount     decimal.Decimal
	CGST          decimal.Decimal
	SGST          decimal.Decimal
	IGST          decimal.Decimal
	TotalWithTax  decimal.Decimal
	Discount      decimal.Decimal
	PaymentMethod string
	BankAccountID *int64
	InvoiceNumber *string
	Notes         string
}

// GeneralLedger is one double-entry posting line. Double-entry semantics
// are advisory: the store does not enforce that debits equal credits
// across a posting.
type GeneralLedger struct {
	ID            int64
	Date          time.Time
	Description   string
	AccountType   string
	AccountName   string
	Debit         decimal.Decimal
	Credit        decimal.Decimal
	Balance       decimal.Decimal
	TransactionID *string
}

// Bill is an invoice header. CustomerID identifies the buyer on sales,
// VendorName the seller on purchases. TaxAmount should equal
// TotalAmount * TaxPercentage / 100, computed by the caller.
type Bill struct {
	ID            int64
	BillNumber    string
	Type          string
	CustomerID    int64
	VendorName    string
	Date          time.Time
	TotalAmount   decimal.Decimal
	TaxPercentage decimal.Decimal
	TaxAmount     decimal.Decimal
	PaymentMode   string
	Notes         string
	BillImageURL  string
	Status        string
}

// BillItem is one line of a bill. BillID is a relation, not a lifetime:
// deleting a bill does not cascade to its items. ItemTotal should equal
// Quantity * UnitPrice, computed by the caller.
type BillItem struct {
	ID        int64
	BillID    int64
	ItemID    int64
	ItemName  string
	Barcode   string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	ItemTotal decimal.Decimal
}
