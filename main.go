package main

import (
	"fmt"
	"log"
	"os"

	"puntoventa-backend/database"
	"puntoventa-backend/handlers"
	"puntoventa-backend/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	if env == "development" {
		if err := godotenv.Load(".env.development"); err != nil {
			log.Println("⚠️ No se pudo cargar .env.development, usando variables del sistema")
		}
	} else {
		if err := godotenv.Load(".env.production"); err != nil {
			log.Println("⚠️ No se pudo cargar .env.production, usando variables del sistema")
		}
	}

	middleware.LoadSecret()

	mongoURI := os.Getenv("MONGODB_URI")
	dbName := os.Getenv("MONGODB_NAME")

	database.Connect(mongoURI, dbName)

	// Seed categories and service types if empty
	if err := handlers.InitializeCatalog(); err != nil {
		log.Println("⚠️ Advertencia: No se pudo inicializar el catálogo:", err)
	}

	router := gin.Default()

	allowedOrigins := []string{
		"http://localhost:5173",
		"http://localhost:4200",
	}

	router.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		for _, o := range allowedOrigins {
			if o == origin {
				c.Writer.Header().Set("Access-Control-Allow-Origin", o)
				break
			}
		}
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.POST("/login", handlers.LoginHandler)
	router.POST("/logout", handlers.LogoutHandler)

	router.GET("/auth/me", handlers.AuthMeHandler(database.UserCollection))
	router.POST("/admin/create-user", handlers.AdminCreateUserHandler)

	productsGroup := router.Group("/products")
	productsGroup.Use(middleware.AuthMiddleware())
	{
		productsGroup.GET("", handlers.GetProductsHandler)
		productsGroup.POST("", handlers.CreateProductHandler)
		productsGroup.PUT("/:id", handlers.UpdateProductHandler)
	}

	salesGroup := router.Group("/sales")
	salesGroup.Use(middleware.AuthMiddleware())
	{
		salesGroup.POST("", handlers.CreateSaleHandler)
		salesGroup.GET("", handlers.GetSalesHandler)
		salesGroup.GET("/summary", handlers.GetSalesSummaryHandler)
		salesGroup.GET("/draft", handlers.SaleDraftHandler)
		salesGroup.POST("/:id/recreate", handlers.RecreateSaleHandler)
	}

	servicesGroup := router.Group("/services")
	servicesGroup.Use(middleware.AuthMiddleware())
	{
		servicesGroup.POST("", handlers.CreateServiceHandler)
		servicesGroup.GET("", handlers.GetServicesHandler)
	}

	branchesGroup := router.Group("/branches")
	branchesGroup.Use(middleware.AuthMiddleware())
	{
		branchesGroup.GET("", handlers.GetBranchesHandler)
		branchesGroup.POST("", handlers.CreateBranchHandler)
		branchesGroup.PUT("/:id", handlers.UpdateBranchHandler)
	}

	categoriesGroup := router.Group("/categories")
	categoriesGroup.Use(middleware.AuthMiddleware())
	{
		categoriesGroup.GET("", handlers.GetCategoriesHandler)
		categoriesGroup.POST("", handlers.CreateCategoryHandler)
	}

	serviceTypesGroup := router.Group("/service-types")
	serviceTypesGroup.Use(middleware.AuthMiddleware())
	{
		serviceTypesGroup.GET("", handlers.GetServiceTypesHandler)
		serviceTypesGroup.POST("", handlers.CreateServiceTypeHandler)
	}

	employeesGroup := router.Group("/employees")
	employeesGroup.Use(middleware.AuthMiddleware())
	{
		employeesGroup.GET("", handlers.GetEmployeesHandler)
		employeesGroup.POST("", handlers.CreateEmployeeHandler)
		employeesGroup.PUT("/:id", handlers.UpdateEmployeeHandler)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		log.Println("INFO: PORT not set, defaulting to " + port)
	}

	fmt.Printf("🚀 Servidor corriendo en modo %s en http://localhost:%s\n", env, port)
	router.Run(":" + port)
}
