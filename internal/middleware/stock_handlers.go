package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetStocks obtiene las acciones disponibles con su último precio conocido
func GetStocks(c *gin.Context) {
	stocks, err := stockRepo.GetStocks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result := []gin.H{}
	for _, stock := range stocks {
		entry := gin.H{
			"id":       stock.ID,
			"name":     stock.Name,
			"exchange": stock.Exchange,
			"currency": stock.Currency,
		}

		// El último precio sale de la caché del servicio de precios
		price, err := priceService.GetLatestPrice(stock.ID)
		if err == nil && price != nil {
			entry["latest_price"] = price.Price
			entry["price_date"] = price.Day()
		}

		result = append(result, entry)
	}

	c.JSON(http.StatusOK, gin.H{"stocks": result})
}

// GetStockPriceOnDate obtiene el precio de una acción en un día exacto
// (query param date en formato ISO, ej: 2025-07-01)
func GetStockPriceOnDate(c *gin.Context) {
	stockID := c.Param("id")
	day := c.Query("date")
	if day == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fecha no proporcionada"})
		return
	}

	price, err := stockRepo.GetPriceOnDate(stockID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if price == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No hay precio registrado para esa fecha"})
		return
	}

	c.JSON(http.StatusOK, price)
}
