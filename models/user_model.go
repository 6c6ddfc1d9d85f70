package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "ENCARGADO"
	RoleSeller  Role = "VENDEDOR"
)

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"password"`
	Username string             `bson:"username" json:"username"`
	Role     Role               `bson:"role" json:"role"`
	BranchID primitive.ObjectID `bson:"branchId,omitempty" json:"branchId,omitempty"`
	Theme    string             `bson:"theme,omitempty" json:"theme,omitempty"`
	Language string             `bson:"language,omitempty" json:"language,omitempty"`
}
