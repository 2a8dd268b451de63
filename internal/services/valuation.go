package services

import (
	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/models"
)

// LatestPriceFunc devuelve el precio más reciente de una acción, o nil
// cuando no hay ninguno registrado
type LatestPriceFunc func(stockID string) (*models.StockPrice, error)

// ValuePortfolio convierte las posiciones de un portafolio en un resumen
// valuado: lista de tenencias con su valor de mercado, total invertido,
// valor actual y ganancia.
//
// Las tenencias sin precio resoluble se excluyen por completo: no aparecen
// en la lista y no aportan ni al invertido ni al valor actual.
func ValuePortfolio(portfolio models.Portfolio, positions map[string]Position, latestPrice LatestPriceFunc) (models.PortfolioSummary, error) {
	summary := models.PortfolioSummary{
		ID:           portfolio.ID,
		Name:         portfolio.Name,
		BaseCurrency: portfolio.BaseCurrency,
		Holdings:     []models.Holding{},
		Graph:        []models.GraphPoint{},
	}

	for _, stockID := range sortedStockIDs(positions) {
		pos := positions[stockID]

		price, err := latestPrice(stockID)
		if err != nil {
			return models.PortfolioSummary{}, err
		}

		// Sin precio no hay valuación posible: la tenencia queda afuera
		if price == nil {
			continue
		}

		value := float64(price.Price) * pos.Quantity

		summary.Invested += pos.AccumulatedCost
		summary.CurrentValue += value
		summary.Holdings = append(summary.Holdings, models.Holding{
			StockID:         stockID,
			Quantity:        pos.Quantity,
			AccumulatedCost: pos.AccumulatedCost,
			LatestPrice:     price.Price,
			Value:           value,
		})
	}

	summary.Gain = summary.CurrentValue - summary.Invested
	return summary, nil
}
