package handlers

import (
	"context"
	"net/http"
	"time"

	"puntoventa-backend/database"
	"puntoventa-backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetEmployeesHandler lists employees, optionally filtered by branch.
func GetEmployeesHandler(c *gin.Context) {
	filter := bson.M{}
	if branchIDStr := c.Query("branchId"); branchIDStr != "" {
		branchID, err := primitive.ObjectIDFromHex(branchIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID de sucursal inválido"})
			return
		}
		filter["branchId"] = branchID
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.EmployeeCollection.Find(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener empleados"})
		return
	}
	defer cursor.Close(ctx)

	var employees []models.Employee
	if err := cursor.All(ctx, &employees); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al procesar empleados"})
		return
	}
	if employees == nil {
		employees = []models.Employee{}
	}

	c.JSON(http.StatusOK, employees)
}

// CreateEmployeeHandler registers an employee in a branch.
func CreateEmployeeHandler(c *gin.Context) {
	var employee models.Employee
	if err := c.ShouldBindJSON(&employee); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}
	if employee.Name == "" || employee.BranchID.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nombre y sucursal son requeridos"})
		return
	}
	if employee.Role == "" {
		employee.Role = models.RoleSeller
	}
	employee.ID = primitive.NewObjectID()
	employee.Active = true

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := database.EmployeeCollection.InsertOne(ctx, employee); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear empleado"})
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// UpdateEmployeeHandler applies a partial update to an employee.
func UpdateEmployeeHandler(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de empleado inválido"})
		return
	}

	var input struct {
		Name   *string      `json:"name"`
		Email  *string      `json:"email"`
		Phone  *string      `json:"phone"`
		Role   *models.Role `json:"role"`
		Active *bool        `json:"active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	update := bson.M{}
	if input.Name != nil {
		update["name"] = *input.Name
	}
	if input.Email != nil {
		update["email"] = *input.Email
	}
	if input.Phone != nil {
		update["phone"] = *input.Phone
	}
	if input.Role != nil {
		update["role"] = *input.Role
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

	result, err := database.EmployeeCollection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": update})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar empleado"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Empleado no encontrado"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Empleado actualizado correctamente"})
}
