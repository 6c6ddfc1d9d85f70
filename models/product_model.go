package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"puntoventa-backend/pricing"
)

// Product is one stock row of a branch. Stock is a float because liquid
// products are measured in fractional liters; it may legally go negative
// after confirming a sale (over-selling is allowed and only warned about).
type Product struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	BranchID    primitive.ObjectID   `bson:"branchId" json:"branchId"`
	CategoryID  primitive.ObjectID   `bson:"categoryId,omitempty" json:"categoryId,omitempty"`
	Name        string               `bson:"name" json:"name"`
	Description string               `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64              `bson:"price" json:"price"`
	Stock       float64              `bson:"stock" json:"stock"`
	Unit        pricing.QuantityUnit `bson:"unit" json:"unit"`
	Active      bool                 `bson:"active" json:"active"`
}
