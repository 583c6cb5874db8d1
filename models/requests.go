// Copyright (c) 2026 Chocorocks.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Request types

type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type ProductRequest struct {
	Code           string  `json:"code"`
	Name           string  `json:"nameProduct"`
	Flavor         string  `json:"flavor,omitempty"`
	Size           string  `json:"size,omitempty"`
	CategoryID     int     `json:"categoryId"`
	ProductionCost float64 `json:"productionCost"`
	WholesalePrice float64 `json:"wholesalePrice"`
	RetailPrice    float64 `json:"retailPrice"`
	Barcode        string  `json:"barcode,omitempty"`
	MinStockLevel  int     `json:"minStockLevel"`
	IsActive       bool    `json:"isActive"`
}

type StoreRequest struct {
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Type     string `json:"typeStore,omitempty"`
	IsActive bool   `json:"isActive"`
}

type ClientRequest struct {
	Name            string `json:"nameLastname"`
	TaxID           string `json:"ruc,omitempty"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phoneNumber,omitempty"`
	Address         string `json:"address,omitempty"`
	RequiresInvoice bool   `json:"requiresInvoice"`
	IsActive        bool   `json:"isActive"`
}

type UserRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password,omitempty"`
	Role                 string `json:"role"`
	TypeIdentification   string `json:"typeIdentification,omitempty"`
	IdentificationNumber string `json:"identificationNumber,omitempty"`
	Phone                string `json:"phoneNumber,omitempty"`
	IsActive             bool   `json:"isActive"`
}

type BatchRequest struct {
	BatchCode       string  `json:"batchCode"`
	ProductID       int     `json:"productId"`
	ProductionDate  string  `json:"productionDate,omitempty"`
	ExpirationDate  string  `json:"expirationDate,omitempty"`
	InitialQuantity int     `json:"initialQuantity"`
	CurrentQuantity int     `json:"currentQuantity"`
	BatchCost       float64 `json:"batchCost"`
	StoreID         int     `json:"storeId,omitempty"`
	IsActive        bool    `json:"isActive"`
}

type MovementRequest struct {
	MovementType string `json:"movementType"`
	ProductID    int    `json:"productId"`
	BatchID      int    `json:"batchId,omitempty"`
	FromStoreID  int    `json:"fromStoreId,omitempty"`
	ToStoreID    int    `json:"toStoreId,omitempty"`
	Quantity     int    `json:"quantity"`
	Reason       string `json:"reason,omitempty"`
	UserID       int    `json:"userId"`
}

type ProductStoreRequest struct {
	ProductID     int `json:"productId"`
	StoreID       int `json:"storeId"`
	CurrentStock  int `json:"currentStock"`
	MinStockLevel int `json:"minStockLevel"`
}

type SaleRequest struct {
	UserID        int          `json:"userId"`
	ClientID      int          `json:"clientId,omitempty"`
	StoreID       int          `json:"storeId"`
	SaleType      string       `json:"saleType"`
	PaymentMethod string       `json:"paymentMethod"`
	Details       []SaleDetail `json:"details,omitempty"`
}

// CompleteSaleRequest finalizes a sale and issues its receipt in one
// backend action.
type CompleteSaleRequest struct {
	SaleID        int    `json:"saleId"`
	PaymentMethod string `json:"paymentMethod"`
	ClientID      int    `json:"clientId,omitempty"`
}

// Response types

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
