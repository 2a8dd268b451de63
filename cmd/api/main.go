package main

import (
	"log"
	"os"

	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/database"
	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/middleware"
	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/repository"
	routes "github.com/MatiasGarciaDev/Portfolio_Api.git/internal/server"
	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Cargar variables de entorno
	if err := godotenv.Load(); err != nil {
		log.Printf("No se pudo cargar el archivo .env: %v", err)
	}

	// Crear el router de Gin
	router := gin.Default()

	// Configurar CORS
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "Admin-Key"}
	config.AllowCredentials = true
	config.ExposeHeaders = []string{"Content-Length"}
	router.Use(cors.New(config))

	// Inicializar base de datos
	if err := database.InitDB(); err != nil {
		log.Fatalf("Error al inicializar la base de datos: %v", err)
	}
	defer database.DB.Close()

	// Insertar acciones y precios iniciales si la base está vacía
	if err := database.SeedInitialData(database.DB); err != nil {
		log.Fatalf("Error al insertar los datos iniciales: %v", err)
	}

	// Configurar las rutas (también inicializa repositorios y servicios)
	routes.RegisterRoutes(router)

	// Iniciar el actualizador diario de precios simulados
	priceUpdater := services.NewPriceUpdater(
		repository.NewStockRepository(database.DB),
		middleware.GetPriceService(),
	)
	if err := priceUpdater.Start(); err != nil {
		log.Fatalf("Error al iniciar el actualizador de precios: %v", err)
	}
	defer priceUpdater.Stop()

	// Iniciar el servidor
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Error al iniciar el servidor: %v", err)
	}
}
