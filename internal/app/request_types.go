package app

// Monetary and meterage amounts arrive as strings and are parsed into
// decimals at this boundary, so client float formatting never leaks into
// the books. Dates are YYYY-MM-DD.

// LoginRequest authenticates a user.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LedgerRequest creates or updates a business-partner ledger.
type LedgerRequest struct {
	LedgerCode    string `json:"ledger_code" validate:"required,max=32"`
	Name          string `json:"name" validate:"required,max=128"`
	ContactPerson string `json:"contact_person" validate:"max=128"`
	Phone         string `json:"phone" validate:"max=32"`
	Email         string `json:"email" validate:"omitempty,email"`
	Address       string `json:"address" validate:"max=512"`
	GSTIN         string `json:"gstin" validate:"max=15"`
}

// QualityDetailPayload is one per-quality line on a weaver challan.
type QualityDetailPayload struct {
	Quality  string `json:"quality" validate:"required"`
	Quantity string `json:"quantity" validate:"required"`
	Rate     string `json:"rate"`
}

// WeaverChallanRequest creates or updates a raw-material receipt.
type WeaverChallanRequest struct {
	ChallanDate     string                 `json:"challan_date" validate:"required,datetime=2006-01-02"`
	LedgerCode      string                 `json:"ledger_code"`
	Quantity        string                 `json:"quantity" validate:"required"`
	QualityDetails  []QualityDetailPayload `json:"quality_details" validate:"dive"`
	VendorAmount    string                 `json:"vendor_amount"`
	SGST            string                 `json:"sgst"`
	CGST            string                 `json:"cgst"`
	IGST            string                 `json:"igst"`
	TransportCharge string                 `json:"transport_charge"`
	Remark          string                 `json:"remark" validate:"max=512"`
}

// ShortingRequest records a quantity reduction against a batch.
type ShortingRequest struct {
	BatchNumber string `json:"batch_number" validate:"required"`
	Quality     string `json:"quality" validate:"required"`
	Quantity    string `json:"quantity" validate:"required"`
	EntryDate   string `json:"entry_date" validate:"required,datetime=2006-01-02"`
	Remark      string `json:"remark" validate:"max=512"`
}

// SizeDetailPayload is one per-size line on an isteaching challan.
type SizeDetailPayload struct {
	Size     string `json:"size" validate:"required"`
	Quantity int    `json:"quantity" validate:"min=0"`
}

// IsteachingChallanRequest creates or updates a stitching record.
type IsteachingChallanRequest struct {
	ChallanDate     string              `json:"challan_date" validate:"required,datetime=2006-01-02"`
	LedgerCode      string              `json:"ledger_code"`
	BatchNumbers    []string            `json:"batch_numbers" validate:"required,min=1,dive,required"`
	Quantity        int                 `json:"quantity" validate:"min=0"`
	TopQty          string              `json:"top_qty"`
	TopRate         string              `json:"top_rate"`
	BottomQty       string              `json:"bottom_qty"`
	BottomRate      string              `json:"bottom_rate"`
	IsBoth          bool                `json:"is_both"`
	BothTop         string              `json:"both_top"`
	BothBottom      string              `json:"both_bottom"`
	Sizes           []SizeDetailPayload `json:"sizes" validate:"dive"`
	TransportCharge string              `json:"transport_charge"`
	Remark          string              `json:"remark" validate:"max=512"`
}

// ClassifyRequest assigns an inventory classification tag.
type ClassifyRequest struct {
	Classification string `json:"classification" validate:"required,oneof=unclassified good bad wastage shorting"`
}

// ExpenseRequest records a cost entry against a batch.
type ExpenseRequest struct {
	BatchNumber string `json:"batch_number" validate:"required"`
	Amount      string `json:"amount" validate:"required"`
	ExpenseDate string `json:"expense_date" validate:"required,datetime=2006-01-02"`
	Reason      string `json:"reason" validate:"required,max=256"`
}

// VoucherRequest creates or updates a payment voucher.
type VoucherRequest struct {
	LedgerCode  string `json:"ledger_code" validate:"required"`
	VoucherDate string `json:"voucher_date" validate:"required,datetime=2006-01-02"`
	Direction   string `json:"direction" validate:"required,oneof=Credit Debit"`
	Amount      string `json:"amount" validate:"required"`
	Purpose     string `json:"purpose" validate:"max=256"`
}

// ProductRequest creates or updates a product.
type ProductRequest struct {
	ProductCode string `json:"product_code" validate:"required,max=32"`
	Name        string `json:"name" validate:"required,max=128"`
	Category    string `json:"category" validate:"max=64"`
	Size        string `json:"size" validate:"max=32"`
	Color       string `json:"color" validate:"max=32"`
	UnitPrice   string `json:"unit_price" validate:"required"`
	StockQty    int    `json:"stock_qty" validate:"min=0"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
}

// PurchaseOrderLinePayload is one line on a purchase order request.
type PurchaseOrderLinePayload struct {
	Description string `json:"description" validate:"required,max=256"`
	Quantity    string `json:"quantity" validate:"required"`
	UnitCost    string `json:"unit_cost" validate:"required"`
}

// PurchaseOrderRequest creates a draft purchase order.
type PurchaseOrderRequest struct {
	LedgerCode string                     `json:"ledger_code" validate:"required"`
	PODate     string                     `json:"po_date" validate:"required,datetime=2006-01-02"`
	Notes      string                     `json:"notes" validate:"max=512"`
	Lines      []PurchaseOrderLinePayload `json:"lines" validate:"required,min=1,dive"`
}

// UserRequest creates a user.
type UserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=admin accounts operator"`
}
