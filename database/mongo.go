package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Client *mongo.Client
var UserCollection *mongo.Collection
var ProductCollection *mongo.Collection
var SaleCollection *mongo.Collection
var ServiceCollection *mongo.Collection
var BranchCollection *mongo.Collection
var CategoryCollection *mongo.Collection
var ServiceTypeCollection *mongo.Collection
var EmployeeCollection *mongo.Collection

func Connect(uri string, dbName string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal(err)
	}

	Client = client
	db := client.Database(dbName)
	UserCollection = db.Collection("users")
	ProductCollection = db.Collection("products")
	SaleCollection = db.Collection("sales")
	ServiceCollection = db.Collection("services")
	BranchCollection = db.Collection("branches")
	CategoryCollection = db.Collection("categories")
	ServiceTypeCollection = db.Collection("servicetypes")
	EmployeeCollection = db.Collection("employees")
}
