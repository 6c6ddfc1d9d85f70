package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServiceOrderItem is a confirmed service row: a labor type that either
// itemizes the products it consumed or carries a manual flat price. Mode
// mirrors pricing.ServiceMode; LineTotal is the amount the pricing engine
// computed at confirmation.
type ServiceOrderItem struct {
	ID              string             `bson:"id" json:"id"`
	ServiceTypeID   primitive.ObjectID `bson:"serviceTypeId" json:"serviceTypeId"`
	ServiceTypeName string             `bson:"serviceTypeName" json:"serviceTypeName"`
	Observations    string             `bson:"observations,omitempty" json:"observations,omitempty"`
	Notes           string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Mode            string             `bson:"mode" json:"mode"`
	Products        []SaleItem         `bson:"products,omitempty" json:"products,omitempty"`
	ManualPrice     float64            `bson:"manualPrice,omitempty" json:"manualPrice,omitempty"`
	LineTotal       float64            `bson:"lineTotal" json:"lineTotal"`
}

type ServiceOrder struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	BranchID      primitive.ObjectID `bson:"branchId" json:"branchId"`
	Items         []ServiceOrderItem `bson:"items" json:"items"`
	Subtotal      float64            `bson:"subtotal" json:"subtotal"`
	Discount      *SaleAdjustment    `bson:"discount,omitempty" json:"discount,omitempty"`
	Interest      *SaleAdjustment    `bson:"interest,omitempty" json:"interest,omitempty"`
	Total         float64            `bson:"total" json:"total"`
	PaymentMethod PaymentMethod      `bson:"paymentMethod" json:"paymentMethod"`
	CustomerName  string             `bson:"customerName,omitempty" json:"customerName,omitempty"`
	Date          time.Time          `bson:"date" json:"date"`
}
