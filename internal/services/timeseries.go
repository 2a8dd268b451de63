package services

import (
	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/models"
)

// PricePolicy define qué precio usa la serie diaria cuando una acción no
// tiene observación para una fecha dada
type PricePolicy int

const (
	// PricePolicyExactDate solo usa precios observados en la fecha exacta:
	// un día sin observación aporta cero para esa tenencia. Es el
	// comportamiento histórico del sistema y el valor por defecto.
	PricePolicyExactDate PricePolicy = iota

	// PricePolicyCarryForward arrastra el último precio conocido hacia
	// adelante cuando falta la observación del día
	PricePolicyCarryForward
)

// PriceIndex es un índice en memoria (acción -> día ISO -> precio).
// Reemplaza las consultas puntuales por día por tenencia: se arma en una
// sola pasada sobre el historial y después cada fecha se resuelve en O(1).
type PriceIndex map[string]map[string]int64

// BuildPriceIndex arma el índice a partir del historial de precios. Las
// observaciones tienen que venir ordenadas por fecha y luego por inserción:
// ante más de una observación por día gana la última insertada.
func BuildPriceIndex(prices []models.StockPrice) PriceIndex {
	index := PriceIndex{}
	for _, p := range prices {
		byDay, ok := index[p.StockID]
		if !ok {
			byDay = map[string]int64{}
			index[p.StockID] = byDay
		}
		byDay[p.Day()] = p.Price
	}
	return index
}

// BuildValueSeries construye la serie diaria de valor de un conjunto de
// tenencias: un punto por cada fecha con observaciones de precio, en orden
// ascendente, sumando precio*cantidad de cada tenencia según la política.
//
// La serie devuelta siempre está completa; recortar a los últimos 7/30/90
// puntos es un problema de presentación del cliente, no de este cálculo.
func BuildValueSeries(dates []string, holdings []models.Holding, index PriceIndex, policy PricePolicy) []models.GraphPoint {
	series := make([]models.GraphPoint, 0, len(dates))

	// Último precio conocido por acción, solo para carry-forward
	lastKnown := map[string]int64{}

	for _, day := range dates {
		var dayTotal float64

		for _, h := range holdings {
			price, ok := index[h.StockID][day]
			if ok {
				lastKnown[h.StockID] = price
			} else if policy == PricePolicyCarryForward {
				price, ok = lastKnown[h.StockID]
			}

			// Sin precio para el día la tenencia no aporta nada
			if ok {
				dayTotal += float64(price) * h.Quantity
			}
		}

		series = append(series, models.GraphPoint{Date: day, Price: dayTotal})
	}

	return series
}
