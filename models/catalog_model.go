package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Branch struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name    string             `bson:"name" json:"name"`
	Address string             `bson:"address,omitempty" json:"address,omitempty"`
	Phone   string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Active  bool               `bson:"active" json:"active"`
}

type Category struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
}

type ServiceType struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
}

type Employee struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BranchID primitive.ObjectID `bson:"branchId" json:"branchId"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone    string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Role     Role               `bson:"role" json:"role"`
	Active   bool               `bson:"active" json:"active"`
}

// GetDefaultCategories seeds the category catalog on first boot.
func GetDefaultCategories() []Category {
	names := []string{"Lubricantes", "Filtros", "Baterías", "Accesorios", "Otros"}
	out := make([]Category, len(names))
	for i, n := range names {
		out[i] = Category{Name: n}
	}
	return out
}

// GetDefaultServiceTypes seeds the service type catalog on first boot.
func GetDefaultServiceTypes() []ServiceType {
	names := []string{"Cambio de aceite", "Cambio de filtros", "Engrase", "Revisión general"}
	out := make([]ServiceType, len(names))
	for i, n := range names {
		out[i] = ServiceType{Name: n}
	}
	return out
}
