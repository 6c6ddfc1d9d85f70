package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"puntoventa-backend/pricing"
)

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "Efectivo"
	PaymentCredit   PaymentMethod = "Crédito"
	PaymentDebit    PaymentMethod = "Débito"
	PaymentTransfer PaymentMethod = "Transferencia"
)

// SaleItem is a confirmed sale row, denormalized with the product name and
// price at the moment of the sale.
type SaleItem struct {
	ProductID   primitive.ObjectID   `bson:"productId" json:"productId"`
	Name        string               `bson:"name" json:"name"`
	Description string               `bson:"description,omitempty" json:"description,omitempty"`
	UnitPrice   float64              `bson:"unitPrice" json:"unitPrice"`
	Quantity    float64              `bson:"quantity" json:"quantity"`
	Unit        pricing.QuantityUnit `bson:"unit" json:"unit"`
	LineTotal   float64              `bson:"lineTotal" json:"lineTotal"`
}

// SaleAdjustment records the discount or interest applied to a sale, with
// the amount it computed to at confirmation time.
type SaleAdjustment struct {
	Kind   string  `bson:"kind" json:"kind"`
	Value  float64 `bson:"value" json:"value"`
	Amount float64 `bson:"amount" json:"amount"`
}

type Sale struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	BranchID      primitive.ObjectID `bson:"branchId" json:"branchId"`
	Items         []SaleItem         `bson:"items" json:"items"`
	Subtotal      float64            `bson:"subtotal" json:"subtotal"`
	Discount      *SaleAdjustment    `bson:"discount,omitempty" json:"discount,omitempty"`
	Interest      *SaleAdjustment    `bson:"interest,omitempty" json:"interest,omitempty"`
	Total         float64            `bson:"total" json:"total"`
	PaymentMethod PaymentMethod      `bson:"paymentMethod" json:"paymentMethod"`
	CustomerName  string             `bson:"customerName,omitempty" json:"customerName,omitempty"`
	Comments      string             `bson:"comments,omitempty" json:"comments,omitempty"`
	Date          time.Time          `bson:"date" json:"date"`
}
