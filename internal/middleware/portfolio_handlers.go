package middleware

import (
	"net/http"
	"time"

	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/database"
	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/models"
	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/repository"
	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/services"
	"github.com/gin-gonic/gin"
)

var (
	portfolioRepo   *repository.PortfolioRepository
	snapshotService *services.SnapshotService
	priceService    *services.PriceService
)

// InitPortfolio inicializa los repositorios y el servicio de snapshots
func InitPortfolio() {
	portfolioRepo = repository.NewPortfolioRepository(database.DB)
	priceService = services.NewPriceService(repository.NewStockRepository(database.DB))
	snapshotService = services.NewSnapshotService(repository.NewSnapshotSource(database.DB, priceService))
}

// GetPriceService expone el servicio de precios para compartir su caché con
// el actualizador de precios
func GetPriceService() *services.PriceService {
	return priceService
}

// GetPortfolioSnapshot calcula y devuelve el snapshot completo del usuario:
// tenencias y valor por portafolio, totales y la serie diaria de valor
func GetPortfolioSnapshot(c *gin.Context) {
	userID := c.GetString("userId")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	// Calcular el snapshot completo. No se cachea: siempre se recalcula
	// desde las filas fuente.
	result, err := snapshotService.ComputePortfolioSnapshot(userID)
	if err != nil {
		if models.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetUserPortfolios obtiene todos los portafolios del usuario
func GetUserPortfolios(c *gin.Context) {
	userID := c.GetString("userId")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	portfolios, err := portfolioRepo.GetPortfoliosByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"portfolios": portfolios})
}

// CreatePortfolio crea un nuevo portafolio para el usuario
func CreatePortfolio(c *gin.Context) {
	userID := c.GetString("userId")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	var portfolio models.Portfolio
	if err := c.ShouldBindJSON(&portfolio); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	portfolio.ID = models.GenerateUUID()
	portfolio.UserID = userID
	portfolio.CreatedAt = time.Now()

	if err := portfolioRepo.CreatePortfolio(&portfolio); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear el portafolio: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Portafolio creado exitosamente", "portfolio": portfolio})
}
