package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"puntoventa-backend/database"
	"puntoventa-backend/format"
	"puntoventa-backend/models"
	"puntoventa-backend/pricing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type serviceItemRequest struct {
	ServiceTypeID string            `json:"serviceTypeId"`
	Observations  string            `json:"observations"`
	Notes         string            `json:"notes"`
	Items         []saleItemRequest `json:"items"`
	ManualPrice   *float64          `json:"manualPrice"`
}

// resolveServiceItem builds one engine service line from a request row: an
// itemized service over the listed products, or a manual flat price when no
// products were consumed.
func resolveServiceItem(ctx context.Context, branchID primitive.ObjectID, req serviceItemRequest) (pricing.ServiceLineItem, []pricing.LineItem, error) {
	serviceTypeID, err := primitive.ObjectIDFromHex(req.ServiceTypeID)
	if err != nil {
		return pricing.ServiceLineItem{}, nil, errors.New("ID de tipo de servicio inválido")
	}

	var serviceType models.ServiceType
	err = database.ServiceTypeCollection.FindOne(ctx, bson.M{"_id": serviceTypeID}).Decode(&serviceType)
	if err != nil {
		return pricing.ServiceLineItem{}, nil, errors.New("Tipo de servicio no encontrado")
	}

	if len(req.Items) == 0 {
		if req.ManualPrice == nil {
			return pricing.ServiceLineItem{}, nil, errors.New("Un servicio sin productos necesita un precio manual")
		}
		line, err := pricing.NewManualService(
			uuid.NewString(),
			serviceType.ID.Hex(),
			serviceType.Name,
			pricing.FromFloat(*req.ManualPrice),
		)
		if err != nil {
			return pricing.ServiceLineItem{}, nil, errors.New("Precio manual inválido")
		}
		line.Observations = req.Observations
		line.Notes = req.Notes
		return line, nil, nil
	}

	products, _, err := resolveSaleItems(ctx, branchID, req.Items)
	if err != nil {
		return pricing.ServiceLineItem{}, nil, err
	}

	line := pricing.NewItemizedService(uuid.NewString(), serviceType.ID.Hex(), serviceType.Name, products)
	line.Observations = req.Observations
	line.Notes = req.Notes
	return line, products, nil
}

func serviceOrderItem(line pricing.ServiceLineItem, serviceTypeID primitive.ObjectID) models.ServiceOrderItem {
	row := models.ServiceOrderItem{
		ID:              line.ID,
		ServiceTypeID:   serviceTypeID,
		ServiceTypeName: line.ServiceTypeName,
		Observations:    line.Observations,
		Notes:           line.Notes,
		Mode:            string(line.Mode),
		LineTotal:       line.LineTotal().InexactFloat64(),
	}
	if line.Mode == pricing.ServiceManual {
		row.ManualPrice = line.ManualPrice.InexactFloat64()
		return row
	}
	for _, p := range line.Products {
		row.Products = append(row.Products, saleItemRow(p))
	}
	return row
}

// CreateServiceHandler confirms a service order: every service row flows
// through the same pricing engine and adjustment rule as a sale.
func CreateServiceHandler(c *gin.Context) {
	userIDStr, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no identificado"})
		return
	}
	userID, _ := primitive.ObjectIDFromHex(userIDStr.(string))

	var input struct {
		BranchID      string               `json:"branchId"`
		Services      []serviceItemRequest `json:"services"`
		Discount      *pricing.Adjustment  `json:"discount"`
		Interest      *pricing.Adjustment  `json:"interest"`
		PaymentMethod models.PaymentMethod `json:"paymentMethod"`
		CustomerName  string               `json:"customerName"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	branchID, err := primitive.ObjectIDFromHex(input.BranchID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de sucursal inválido"})
		return
	}
	if len(input.Services) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El servicio no tiene items"})
		return
	}
	if input.PaymentMethod == "" {
		input.PaymentMethod = models.PaymentCash
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cart := pricing.NewCart()
	var rows []models.ServiceOrderItem
	var allProducts []pricing.LineItem

	for _, req := range input.Services {
		line, products, err := resolveServiceItem(ctx, branchID, req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		cart.AddLine(line)
		allProducts = append(allProducts, products...)

		serviceTypeID, _ := primitive.ObjectIDFromHex(line.ServiceTypeID)
		rows = append(rows, serviceOrderItem(line, serviceTypeID))
	}

	if err := applyAdjustments(cart, input.Discount, input.Interest); err != nil {
		if errors.Is(err, pricing.ErrConflictingAdjustment) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ya hay un descuento o interés aplicado: quitá el existente primero"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ajuste inválido"})
		return
	}

	summary := cart.Summary()

	order := models.ServiceOrder{
		ID:            primitive.NewObjectID(),
		UserID:        userID,
		BranchID:      branchID,
		Items:         rows,
		Subtotal:      summary.Subtotal.InexactFloat64(),
		Discount:      saleAdjustment(input.Discount, summary.DiscountAmount),
		Interest:      saleAdjustment(input.Interest, summary.InterestAmount),
		Total:         summary.Total.InexactFloat64(),
		PaymentMethod: input.PaymentMethod,
		CustomerName:  input.CustomerName,
		Date:          time.Now(),
	}

	warnings, err := persistThenDiscount(
		func() error {
			_, err := database.ServiceCollection.InsertOne(ctx, order)
			return err
		},
		func() []string { return discountStock(ctx, branchID, allProducts) },
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al registrar servicio"})
		return
	}

	if warnings == nil {
		warnings = []string{}
	}
	c.JSON(http.StatusCreated, gin.H{
		"service":  order,
		"display":  format.ForSummary(summary),
		"warnings": warnings,
	})
}

// GetServicesHandler lists service orders for the user, newest first.
func GetServicesHandler(c *gin.Context) {
	userIDStr, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no identificado"})
		return
	}
	userID, _ := primitive.ObjectIDFromHex(userIDStr.(string))

	filter := bson.M{"userId": userID}
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

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := database.ServiceCollection.Find(ctx, filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener servicios"})
		return
	}
	defer cursor.Close(ctx)

	var orders []models.ServiceOrder
	if err := cursor.All(ctx, &orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al procesar servicios"})
		return
	}
	if orders == nil {
		orders = []models.ServiceOrder{}
	}

	c.JSON(http.StatusOK, orders)
}
