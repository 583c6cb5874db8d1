// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Movement type constants
const (
	MovementIn       = "IN"
	MovementOut      = "OUT"
	MovementTransfer = "TRANSFER"
)

// Receipt status constants
const (
	ReceiptIssued    = "ISSUED"
	ReceiptCancelled = "CANCELLED"
)

// Sale type constants
const (
	SaleRetail    = "RETAIL"
	SaleWholesale = "WHOLESALE"
)

// Business entities are owned by the backend; the gateway holds transient,
// request-scoped copies for rendering only. There is no durable store here.

type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Product struct {
	ID             int       `json:"id"`
	Code           string    `json:"code"`
	Name           string    `json:"nameProduct"`
	Flavor         string    `json:"flavor,omitempty"`
	Size           string    `json:"size,omitempty"`
	CategoryID     int       `json:"categoryId"`
	Category       *Category `json:"category,omitempty"`
	ProductionCost float64   `json:"productionCost"`
	WholesalePrice float64   `json:"wholesalePrice"`
	RetailPrice    float64   `json:"retailPrice"`
	Barcode        string    `json:"barcode,omitempty"`
	MinStockLevel  int       `json:"minStockLevel"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt,omitempty"`
}

type Store struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Type     string `json:"typeStore,omitempty"`
	IsActive bool   `json:"isActive"`
}

type Client struct {
	ID              int    `json:"id"`
	Name            string `json:"nameLastname"`
	TaxID           string `json:"ruc,omitempty"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phoneNumber,omitempty"`
	Address         string `json:"address,omitempty"`
	RequiresInvoice bool   `json:"requiresInvoice"`
	IsActive        bool   `json:"isActive"`
}

type User struct {
	ID                   int    `json:"id"`
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Role                 string `json:"role"`
	TypeIdentification   string `json:"typeIdentification,omitempty"`
	IdentificationNumber string `json:"identificationNumber,omitempty"`
	Phone                string `json:"phoneNumber,omitempty"`
	IsActive             bool   `json:"isActive"`
}

type ProductBatch struct {
	ID              int       `json:"id"`
	BatchCode       string    `json:"batchCode"`
	ProductID       int       `json:"productId"`
	Product         *Product  `json:"product,omitempty"`
	ProductionDate  string    `json:"productionDate,omitempty"`
	ExpirationDate  string    `json:"expirationDate,omitempty"`
	InitialQuantity int       `json:"initialQuantity"`
	CurrentQuantity int       `json:"currentQuantity"`
	BatchCost       float64   `json:"batchCost"`
	StoreID         int       `json:"storeId,omitempty"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
}

type InventoryMovement struct {
	ID           int       `json:"id"`
	MovementType string    `json:"movementType"`
	ProductID    int       `json:"productId"`
	BatchID      int       `json:"batchId,omitempty"`
	FromStoreID  int       `json:"fromStoreId,omitempty"`
	ToStoreID    int       `json:"toStoreId,omitempty"`
	Quantity     int       `json:"quantity"`
	Reason       string    `json:"reason,omitempty"`
	UserID       int       `json:"userId"`
	MovementDate time.Time `json:"movementDate,omitempty"`
}

type ProductStore struct {
	ID            int      `json:"id"`
	ProductID     int      `json:"productId"`
	Product       *Product `json:"product,omitempty"`
	StoreID       int      `json:"storeId"`
	Store         *Store   `json:"store,omitempty"`
	CurrentStock  int      `json:"currentStock"`
	MinStockLevel int      `json:"minStockLevel"`
}

type Sale struct {
	ID            int          `json:"id"`
	SaleNumber    string       `json:"saleNumber"`
	UserID        int          `json:"userId"`
	ClientID      int          `json:"clientId,omitempty"`
	Client        *Client      `json:"client,omitempty"`
	StoreID       int          `json:"storeId"`
	SaleType      string       `json:"saleType"`
	PaymentMethod string       `json:"paymentMethod"`
	Subtotal      float64      `json:"subtotal"`
	Discount      float64      `json:"discountAmount,omitempty"`
	Tax           float64      `json:"taxAmount,omitempty"`
	Total         float64      `json:"totalAmount"`
	IsInvoiced    bool         `json:"isInvoiced"`
	Details       []SaleDetail `json:"details,omitempty"`
	CreatedAt     time.Time    `json:"createdAt,omitempty"`
}

type SaleDetail struct {
	ID        int      `json:"id"`
	SaleID    int      `json:"saleId"`
	ProductID int      `json:"productId"`
	Product   *Product `json:"product,omitempty"`
	BatchID   int      `json:"batchId,omitempty"`
	Quantity  int      `json:"quantity"`
	UnitPrice float64  `json:"unitPrice"`
	Subtotal  float64  `json:"subtotal"`
}

type Receipt struct {
	ID            int        `json:"id"`
	ReceiptNumber string     `json:"receiptNumber"`
	SaleID        int        `json:"saleId"`
	Sale          *Sale      `json:"sale,omitempty"`
	IssueDate     time.Time  `json:"issueDate,omitempty"`
	PaymentMethod string     `json:"paymentMethod"`
	Subtotal      float64    `json:"subtotal"`
	Tax           float64    `json:"taxAmount"`
	Total         float64    `json:"totalAmount"`
	Status        string     `json:"status"`
	PrintedAt     *time.Time `json:"printedAt,omitempty"`
}

type UserActivity struct {
	ID          int       `json:"id"`
	UserID      int       `json:"userId"`
	Action      string    `json:"action"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}
