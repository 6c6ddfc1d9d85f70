package handlers

import (
	"context"
	"net/http"
	"time"

	"puntoventa-backend/database"
	"puntoventa-backend/models"
	"puntoventa-backend/pricing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InitializeCatalog seeds the category and service type collections when
// they are empty so a fresh install has something to work with.
func InitializeCatalog() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := database.CategoryCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count == 0 {
		var documents []interface{}
		for _, cat := range models.GetDefaultCategories() {
			cat.ID = primitive.NewObjectID()
			documents = append(documents, cat)
		}
		if len(documents) > 0 {
			if _, err := database.CategoryCollection.InsertMany(ctx, documents); err != nil {
				return err
			}
		}
	}

	count, err = database.ServiceTypeCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count == 0 {
		var documents []interface{}
		for _, st := range models.GetDefaultServiceTypes() {
			st.ID = primitive.NewObjectID()
			documents = append(documents, st)
		}
		if len(documents) > 0 {
			if _, err := database.ServiceTypeCollection.InsertMany(ctx, documents); err != nil {
				return err
			}
		}
	}

	return nil
}

// GetProductsHandler returns products filtered by branch, search term and
// active flag. This is the lookup the sale/service carts search against.
func GetProductsHandler(c *gin.Context) {
	filter := bson.M{}

	if branchIDStr := c.Query("branchId"); branchIDStr != "" {
		branchID, err := primitive.ObjectIDFromHex(branchIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID de sucursal inválido"})
			return
		}
		filter["branchId"] = branchID
	}

	if term := c.Query("q"); term != "" {
		filter["name"] = bson.M{"$regex": term, "$options": "i"}
	}

	if active := c.Query("active"); active == "true" {
		filter["active"] = true
	} else if active == "false" {
		filter["active"] = false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.ProductCollection.Find(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener productos"})
		return
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err = cursor.All(ctx, &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al decodificar productos"})
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	c.JSON(http.StatusOK, products)
}

// CreateProductHandler registers a new product in a branch.
func CreateProductHandler(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	if product.Name == "" || product.BranchID.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nombre y sucursal son requeridos"})
		return
	}
	if product.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El precio no puede ser negativo"})
		return
	}
	if product.Unit == "" {
		product.Unit = pricing.Unit
	}
	if !product.Unit.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unidad de medida inválida"})
		return
	}

	product.ID = primitive.NewObjectID()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := database.ProductCollection.InsertOne(ctx, product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear producto"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProductHandler applies a partial update to a product.
func UpdateProductHandler(c *gin.Context) {
	idStr := c.Param("id")
	objID, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de producto inválido"})
		return
	}

	var input struct {
		Name        *string               `json:"name"`
		Description *string               `json:"description"`
		Price       *float64              `json:"price"`
		Stock       *float64              `json:"stock"`
		Unit        *pricing.QuantityUnit `json:"unit"`
		Active      *bool                 `json:"active"`
		CategoryID  *string               `json:"categoryId"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	update := bson.M{}
	if input.Name != nil {
		update["name"] = *input.Name
	}
	if input.Description != nil {
		update["description"] = *input.Description
	}
	if input.Price != nil {
		if *input.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "El precio no puede ser negativo"})
			return
		}
		update["price"] = *input.Price
	}
	if input.Stock != nil {
		update["stock"] = *input.Stock
	}
	if input.Unit != nil {
		if !input.Unit.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unidad de medida inválida"})
			return
		}
		update["unit"] = *input.Unit
	}
	if input.Active != nil {
		update["active"] = *input.Active
	}
	if input.CategoryID != nil {
		categoryID, err := primitive.ObjectIDFromHex(*input.CategoryID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID de categoría inválido"})
			return
		}
		update["categoryId"] = categoryID
	}

	if len(update) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No se enviaron datos para actualizar"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.ProductCollection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": update})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar producto"})
		return
	}

	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Producto no encontrado"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Producto actualizado correctamente"})
}
