package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/database"
	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/models"
	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/repository"
	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/services"
	"github.com/gin-gonic/gin"
)

var (
	reportRepo     *repository.ReportRepository
	reportRenderer services.ReportRenderer
)

// InitReports inicializa el repositorio de reportes y el renderizador
func InitReports() {
	reportRepo = repository.NewReportRepository(database.DB)
	reportRenderer = services.NewHTMLReportRenderer("public/reports")
}

// GetUserReports obtiene todos los reportes de los portafolios del usuario
func GetUserReports(c *gin.Context) {
	userID := c.GetString("userId")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	reports, err := reportRepo.GetUserReports(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, reports)
}

// GenerateReport genera un reporte para un portafolio del usuario con las
// transacciones del periodo (monthly o yearly)
func GenerateReport(c *gin.Context) {
	userID := c.GetString("userId")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	var request struct {
		PortfolioID string `json:"portfolio_id" binding:"required"`
		Period      string `json:"period" binding:"required"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Verificar que el portafolio exista y pertenezca al usuario
	portfolio, err := portfolioRepo.GetPortfolio(userID, request.PortfolioID)
	if err != nil {
		if errors.Is(err, models.ErrPortfolioNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Portafolio no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()

	// La fecha de inicio depende del periodo pedido
	startDate, err := services.PeriodStart(request.Period, now)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transactions, err := transactionRepo.GetTransactionsSince(request.PortfolioID, startDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	reportID := models.GenerateUUID()

	content, err := services.BuildReportContent(reportID, *portfolio, request.Period, transactions, now)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Renderizar el documento (colaborador opaco) y guardar la referencia
	fileName, err := reportRenderer.Render(content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al generar el reporte"})
		return
	}

	report := &models.Report{
		ID:          reportID,
		PortfolioID: request.PortfolioID,
		Period:      request.Period,
		GeneratedAt: now,
		Summary:     content.Summary(),
		URI:         "public/reports/" + fileName,
	}

	if err := reportRepo.CreateReport(report); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":           "Reporte generado exitosamente",
		"transaction_count": content.TransactionCount,
		"report":            report,
	})
}

// DeleteReport elimina un reporte del usuario
func DeleteReport(c *gin.Context) {
	userID := c.GetString("userId")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	reportID := c.Param("id")

	if err := reportRepo.DeleteReport(userID, reportID); err != nil {
		if errors.Is(err, models.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reporte no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reporte eliminado"})
}
