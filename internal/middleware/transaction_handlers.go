package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/database"
	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/models"
	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/repository"
	"github.com/gin-gonic/gin"
)

var (
	transactionRepo *repository.TransactionRepository
	stockRepo       *repository.StockRepository
)

// InitTransactions inicializa los repositorios de transacciones y acciones
func InitTransactions() {
	transactionRepo = repository.NewTransactionRepository(database.DB)
	stockRepo = repository.NewStockRepository(database.DB)
}

// CreateTransaction crea una nueva transacción para el usuario autenticado.
// Las transacciones son inmutables: no hay endpoints de update ni delete.
func CreateTransaction(c *gin.Context) {
	userID := c.GetString("userId")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	var transaction models.Transaction
	if err := c.ShouldBindJSON(&transaction); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Verificar que el portafolio pertenezca al usuario
	if _, err := portfolioRepo.GetPortfolio(userID, transaction.PortfolioID); err != nil {
		if errors.Is(err, models.ErrPortfolioNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Portafolio no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Validar que el ticker exista
	exists, err := stockRepo.StockExists(transaction.StockID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Acción no encontrada"})
		return
	}

	transaction.ID = models.GenerateUUID()
	if transaction.Date.IsZero() {
		transaction.Date = time.Now()
	}

	// Crear la transacción (la validación de tipo y cantidades ocurre en
	// el repositorio, en el borde)
	if err := transactionRepo.CreateTransaction(&transaction); err != nil {
		if models.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Transacción creada exitosamente", "transaction": transaction})
}

// GetUserTransactions obtiene todas las transacciones del usuario entre
// todos sus portafolios
func GetUserTransactions(c *gin.Context) {
	userID := c.GetString("userId")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	transactions, err := transactionRepo.GetUserTransactions(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, transactions)
}
