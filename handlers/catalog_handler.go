package handlers

import (
	"context"
	"net/http"
	"time"

	"puntoventa-backend/cache"
	"puntoventa-backend/database"
	"puntoventa-backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// catalogCache keeps branch/category/service-type listings warm for a few
// minutes; writes invalidate the affected key.
var catalogCache = cache.New(5 * time.Minute)

const (
	cacheKeyBranches     = "branches"
	cacheKeyCategories   = "categories"
	cacheKeyServiceTypes = "servicetypes"
)

func listCollection(key string, load func(ctx context.Context) (any, error)) (any, error) {
	return catalogCache.GetOrRefresh(key, func() (any, error) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return load(ctx)
	})
}

// GetCategoriesHandler returns all categories, served from the TTL cache.
func GetCategoriesHandler(c *gin.Context) {
	value, err := listCollection(cacheKeyCategories, func(ctx context.Context) (any, error) {
		cursor, err := database.CategoryCollection.Find(ctx, bson.M{})
		if err != nil {
			return nil, err
		}
		defer cursor.Close(ctx)
		var categories []models.Category
		if err := cursor.All(ctx, &categories); err != nil {
			return nil, err
		}
		if categories == nil {
			categories = []models.Category{}
		}
		return categories, nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener categorías"})
		return
	}
	c.JSON(http.StatusOK, value)
}

// CreateCategoryHandler registers a category and drops the cached listing.
func CreateCategoryHandler(c *gin.Context) {
	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil || category.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}
	category.ID = primitive.NewObjectID()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := database.CategoryCollection.InsertOne(ctx, category); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear categoría"})
		return
	}

	catalogCache.Invalidate(cacheKeyCategories)
	c.JSON(http.StatusCreated, category)
}

// GetBranchesHandler returns all branches, served from the TTL cache.
func GetBranchesHandler(c *gin.Context) {
	value, err := listCollection(cacheKeyBranches, func(ctx context.Context) (any, error) {
		cursor, err := database.BranchCollection.Find(ctx, bson.M{})
		if err != nil {
			return nil, err
		}
		defer cursor.Close(ctx)
		var branches []models.Branch
		if err := cursor.All(ctx, &branches); err != nil {
			return nil, err
		}
		if branches == nil {
			branches = []models.Branch{}
		}
		return branches, nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener sucursales"})
		return
	}
	c.JSON(http.StatusOK, value)
}

// CreateBranchHandler registers a branch and drops the cached listing.
func CreateBranchHandler(c *gin.Context) {
	var branch models.Branch
	if err := c.ShouldBindJSON(&branch); err != nil || branch.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}
	branch.ID = primitive.NewObjectID()
	branch.Active = true

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := database.BranchCollection.InsertOne(ctx, branch); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear sucursal"})
		return
	}

	catalogCache.Invalidate(cacheKeyBranches)
	c.JSON(http.StatusCreated, branch)
}

// UpdateBranchHandler applies a partial update to a branch.
func UpdateBranchHandler(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de sucursal inválido"})
		return
	}

	var input struct {
		Name    *string `json:"name"`
		Address *string `json:"address"`
		Phone   *string `json:"phone"`
		Active  *bool   `json:"active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	update := bson.M{}
	if input.Name != nil {
		update["name"] = *input.Name
	}
	if input.Address != nil {
		update["address"] = *input.Address
	}
	if input.Phone != nil {
		update["phone"] = *input.Phone
	}
	if input.Active != nil {
		update["active"] = *input.Active
	}
	if len(update) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No se enviaron datos para actualizar"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.BranchCollection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": update})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar sucursal"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sucursal no encontrada"})
		return
	}

	catalogCache.Invalidate(cacheKeyBranches)
	c.JSON(http.StatusOK, gin.H{"message": "Sucursal actualizada correctamente"})
}

// GetServiceTypesHandler returns all service types, served from the cache.
func GetServiceTypesHandler(c *gin.Context) {
	value, err := listCollection(cacheKeyServiceTypes, func(ctx context.Context) (any, error) {
		cursor, err := database.ServiceTypeCollection.Find(ctx, bson.M{})
		if err != nil {
			return nil, err
		}
		defer cursor.Close(ctx)
		var types []models.ServiceType
		if err := cursor.All(ctx, &types); err != nil {
			return nil, err
		}
		if types == nil {
			types = []models.ServiceType{}
		}
		return types, nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener tipos de servicio"})
		return
	}
	c.JSON(http.StatusOK, value)
}

// CreateServiceTypeHandler registers a service type and drops the cache.
func CreateServiceTypeHandler(c *gin.Context) {
	var serviceType models.ServiceType
	if err := c.ShouldBindJSON(&serviceType); err != nil || serviceType.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}
	serviceType.ID = primitive.NewObjectID()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := database.ServiceTypeCollection.InsertOne(ctx, serviceType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear tipo de servicio"})
		return
	}

	catalogCache.Invalidate(cacheKeyServiceTypes)
	c.JSON(http.StatusCreated, serviceType)
}
