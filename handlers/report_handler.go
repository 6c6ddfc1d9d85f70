package handlers

import (
	"context"
	"net/http"
	"time"

	"puntoventa-backend/database"
	"puntoventa-backend/format"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DailySummary aggregates one day's sales.
type DailySummary struct {
	Date         time.Time `json:"date"`
	TotalAmount  float64   `json:"totalAmount"`
	TotalDisplay string    `json:"totalDisplay"`
	Count        int       `json:"count"`
}

// GetSalesSummaryHandler groups the user's sales by day and returns total
// and count per day, newest first.
func GetSalesSummaryHandler(c *gin.Context) {
	userIDStr, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no identificado"})
		return
	}
	userID, _ := primitive.ObjectIDFromHex(userIDStr.(string))

	match := bson.D{{Key: "userId", Value: userID}}
	if branchIDStr := c.Query("branchId"); branchIDStr != "" {
		branchID, err := primitive.ObjectIDFromHex(branchIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID de sucursal inválido"})
			return
		}
		match = append(match, bson.E{Key: "branchId", Value: branchID})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Group by calendar day in Argentina time.
	loc := time.FixedZone("ART", -3*60*60)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "year", Value: bson.D{{Key: "$year", Value: "$date"}}},
				{Key: "month", Value: bson.D{{Key: "$month", Value: "$date"}}},
				{Key: "day", Value: bson.D{{Key: "$dayOfMonth", Value: "$date"}}},
			}},
			{Key: "totalAmount", Value: bson.D{{Key: "$sum", Value: "$total"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "_id.year", Value: -1},
			{Key: "_id.month", Value: -1},
			{Key: "_id.day", Value: -1},
		}}},
	}

	cursor, err := database.SaleCollection.Aggregate(ctx, pipeline)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener resumen de ventas"})
		return
	}
	defer cursor.Close(ctx)

	var raw []struct {
		ID struct {
			Year  int `bson:"year"`
			Month int `bson:"month"`
			Day   int `bson:"day"`
		} `bson:"_id"`
		TotalAmount float64 `bson:"totalAmount"`
		Count       int     `bson:"count"`
	}
	if err := cursor.All(ctx, &raw); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al procesar resumen"})
		return
	}

	summaries := make([]DailySummary, 0, len(raw))
	for _, r := range raw {
		summaries = append(summaries, DailySummary{
			Date:         time.Date(r.ID.Year, time.Month(r.ID.Month), r.ID.Day, 0, 0, 0, 0, loc),
			TotalAmount:  r.TotalAmount,
			TotalDisplay: format.FormatMoney(r.TotalAmount),
			Count:        r.Count,
		})
	}

	c.JSON(http.StatusOK, summaries)
}
