package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"puntoventa-backend/cache"
	"puntoventa-backend/database"
	"puntoventa-backend/format"
	"puntoventa-backend/models"
	"puntoventa-backend/pricing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// saleSnapshots stages a prior sale per user for the "repetir venta" flow.
var saleSnapshots = cache.NewSaleSnapshotStore()

type saleItemRequest struct {
	ProductID string  `json:"productId"`
	Quantity  float64 `json:"quantity"`
}

// resolveSaleItems loads each requested product and builds the engine line
// items plus the denormalized rows to persist. Inactive and unknown
// products are rejected; quantities are normalized by the engine.
func resolveSaleItems(ctx context.Context, branchID primitive.ObjectID, items []saleItemRequest) ([]pricing.LineItem, []models.SaleItem, error) {
	var lines []pricing.LineItem
	var rows []models.SaleItem

	for _, it := range items {
		productID, err := primitive.ObjectIDFromHex(it.ProductID)
		if err != nil {
			return nil, nil, errors.New("ID de producto inválido")
		}

		var product models.Product
		err = database.ProductCollection.FindOne(ctx, bson.M{"_id": productID, "branchId": branchID}).Decode(&product)
		if err != nil {
			return nil, nil, errors.New("Producto no encontrado en la sucursal")
		}
		if !product.Active {
			return nil, nil, errors.New("El producto " + product.Name + " no está activo")
		}

		line, err := pricing.NewLineItem(
			product.ID.Hex(),
			product.Name,
			pricing.FromFloat(product.Price),
			pricing.FromFloat(it.Quantity),
			product.Unit,
		)
		if err != nil {
			return nil, nil, errors.New("Cantidad inválida para " + product.Name)
		}
		line.Description = product.Description
		line.AvailableStock = pricing.FromFloat(product.Stock)

		lines = append(lines, line)
		rows = append(rows, saleItemRow(line))
	}

	return lines, rows, nil
}

// saleItemRow denormalizes an engine line into the row persisted with the
// sale, keeping the product data as it was at confirmation time.
func saleItemRow(line pricing.LineItem) models.SaleItem {
	productID, _ := primitive.ObjectIDFromHex(line.ProductID)
	return models.SaleItem{
		ProductID:   productID,
		Name:        line.Name,
		Description: line.Description,
		UnitPrice:   line.UnitPrice.InexactFloat64(),
		Quantity:    line.Quantity.InexactFloat64(),
		Unit:        line.Unit,
		LineTotal:   line.LineTotal().InexactFloat64(),
	}
}

// applyAdjustments runs the requested discount/interest through the cart's
// state machine. The engine rejects a second adjustment kind while the
// first is active.
func applyAdjustments(cart *pricing.Cart, discount, interest *pricing.Adjustment) error {
	if discount != nil {
		if err := cart.ApplyDiscount(*discount); err != nil {
			return err
		}
	}
	if interest != nil {
		if err := cart.ApplyInterest(*interest); err != nil {
			return err
		}
	}
	return nil
}

// persistThenDiscount commits the record first and only then touches stock:
// a failed insert must leave inventory untouched so a retry starts clean.
func persistThenDiscount(insert func() error, discount func() []string) ([]string, error) {
	if err := insert(); err != nil {
		return nil, err
	}
	return discount(), nil
}

// discountStock decrements the sold quantities. Stock is allowed to go
// negative; products that ended up oversold come back as warnings.
func discountStock(ctx context.Context, branchID primitive.ObjectID, lines []pricing.LineItem) []string {
	var warnings []string
	for _, line := range lines {
		productID, err := primitive.ObjectIDFromHex(line.ProductID)
		if err != nil {
			continue
		}
		_, err = database.ProductCollection.UpdateOne(
			ctx,
			bson.M{"_id": productID, "branchId": branchID},
			bson.M{"$inc": bson.M{"stock": -line.Quantity.InexactFloat64()}},
		)
		if err != nil {
			warnings = append(warnings, "No se pudo descontar stock de "+line.Name)
			continue
		}
		if line.AvailableStock.LessThan(line.Quantity) {
			warnings = append(warnings, "Stock de "+line.Name+" quedó negativo")
		}
	}
	return warnings
}

func saleAdjustment(a *pricing.Adjustment, amount decimal.Decimal) *models.SaleAdjustment {
	if a == nil || amount.IsZero() {
		return nil
	}
	return &models.SaleAdjustment{
		Kind:   string(a.Kind),
		Value:  a.Value.InexactFloat64(),
		Amount: amount.InexactFloat64(),
	}
}

// CreateSaleHandler confirms a sale: it rebuilds the cart through the
// pricing engine, recomputes the totals server side, discounts stock and
// persists the result.
func CreateSaleHandler(c *gin.Context) {
	userIDStr, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no identificado"})
		return
	}
	userID, _ := primitive.ObjectIDFromHex(userIDStr.(string))

	var input struct {
		BranchID      string               `json:"branchId"`
		Items         []saleItemRequest    `json:"items"`
		Discount      *pricing.Adjustment  `json:"discount"`
		Interest      *pricing.Adjustment  `json:"interest"`
		PaymentMethod models.PaymentMethod `json:"paymentMethod"`
		CustomerName  string               `json:"customerName"`
		Comments      string               `json:"comments"`
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
	if len(input.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "La venta no tiene productos"})
		return
	}
	if input.PaymentMethod == "" {
		input.PaymentMethod = models.PaymentCash
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	lines, rows, err := resolveSaleItems(ctx, branchID, input.Items)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart := pricing.NewCart()
	for i := range lines {
		cart.AddLine(lines[i])
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

	sale := models.Sale{
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
		Comments:      input.Comments,
		Date:          time.Now(),
	}

	warnings, err := persistThenDiscount(
		func() error {
			_, err := database.SaleCollection.InsertOne(ctx, sale)
			return err
		},
		func() []string { return discountStock(ctx, branchID, lines) },
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al registrar venta"})
		return
	}

	if warnings == nil {
		warnings = []string{}
	}
	c.JSON(http.StatusCreated, gin.H{
		"sale":     sale,
		"display":  format.ForSummary(summary),
		"warnings": warnings,
	})
}

// GetSalesHandler lists sales for the user, newest first, optionally
// filtered by branch and day.
func GetSalesHandler(c *gin.Context) {
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

	if dateParam := c.Query("date"); dateParam != "" {
		// Expecting YYYY-MM-DD
		parsedDate, err := time.Parse("2006-01-02", dateParam)
		if err == nil {
			nextDay := parsedDate.Add(24 * time.Hour)
			filter["date"] = bson.M{
				"$gte": parsedDate,
				"$lt":  nextDay,
			}
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := database.SaleCollection.Find(ctx, filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener ventas"})
		return
	}
	defer cursor.Close(ctx)

	var sales []models.Sale
	if err := cursor.All(ctx, &sales); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al procesar ventas"})
		return
	}
	if sales == nil {
		sales = []models.Sale{}
	}

	c.JSON(http.StatusOK, sales)
}

// RecreateSaleHandler stages a snapshot of a previous sale so a fresh draft
// cart can be built from it.
func RecreateSaleHandler(c *gin.Context) {
	userIDStr, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no identificado"})
		return
	}
	userID, _ := primitive.ObjectIDFromHex(userIDStr.(string))

	saleID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var sale models.Sale
	err = database.SaleCollection.FindOne(ctx, bson.M{"_id": saleID, "userId": userID}).Decode(&sale)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Venta no encontrada"})
		return
	}

	saleSnapshots.Stage(userIDStr.(string), sale)
	c.JSON(http.StatusOK, gin.H{"message": "Venta preparada para repetir"})
}

// SaleDraftHandler consumes the staged snapshot and returns a fresh draft
// cart hydrated from it. The snapshot is cleared in the same step, so a
// second call finds nothing. Adjustments are not carried over: the draft
// starts clean.
func SaleDraftHandler(c *gin.Context) {
	userIDStr, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no identificado"})
		return
	}

	sale, ok := saleSnapshots.Consume(userIDStr.(string))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No hay ninguna venta preparada para repetir"})
		return
	}

	cart := pricing.NewCart()
	items := make([]models.SaleItem, 0, len(sale.Items))
	for _, it := range sale.Items {
		line, err := pricing.NewLineItem(
			it.ProductID.Hex(),
			it.Name,
			pricing.FromFloat(it.UnitPrice),
			pricing.FromFloat(it.Quantity),
			it.Unit,
		)
		if err != nil {
			continue
		}
		cart.AddLine(line)
		it.LineTotal = line.LineTotal().InexactFloat64()
		items = append(items, it)
	}

	summary := cart.Summary()
	c.JSON(http.StatusOK, gin.H{
		"branchId":      sale.BranchID,
		"items":         items,
		"paymentMethod": sale.PaymentMethod,
		"summary":       summary,
		"display":       format.ForSummary(summary),
	})
}
