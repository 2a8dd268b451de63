package services

import (
	"sort"

	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/models"
)

// Position es la posición neta acumulada de una acción dentro de un
// portafolio: cantidad neta y costo acumulado de adquisición.
//
// Política de costo: "costo bruto no amortizado". Las ventas descuentan
// cantidad pero NO reducen el costo acumulado. No es contabilidad de costo
// promedio ni FIFO/LIFO; los números de los reportes dependen de esta
// política, así que cualquier cambio tiene que ser una decisión explícita.
type Position struct {
	Quantity        float64
	AccumulatedCost float64
}

// ResolveHoldings reduce las transacciones de un portafolio a un mapa de
// acción -> posición neta. Las transacciones se procesan en orden de fecha
// ascendente para que el cálculo sea determinista.
//
// Reglas por tipo:
//   - BUY: suma cantidad y suma cantidad*precio + comisión al costo
//   - SELL: resta cantidad, el costo acumulado no cambia
//   - DIVIDEND: no altera ni cantidad ni costo
//
// Las posiciones con cantidad neta <= 0 (cerradas o en corto) se excluyen
// del resultado.
func ResolveHoldings(transactions []models.Transaction) (map[string]Position, error) {
	ordered := make([]models.Transaction, len(transactions))
	copy(ordered, transactions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	positions := map[string]Position{}
	for _, tx := range ordered {
		switch tx.Type {
		case models.TransactionTypeBuy:
			pos := positions[tx.StockID]
			pos.Quantity += tx.Quantity
			pos.AccumulatedCost += tx.Quantity*tx.PricePerShare + tx.Fee
			positions[tx.StockID] = pos
		case models.TransactionTypeSell:
			pos := positions[tx.StockID]
			pos.Quantity -= tx.Quantity
			positions[tx.StockID] = pos
		case models.TransactionTypeDividend:
			// Los dividendos no alteran la posición
		default:
			return nil, &models.ValidationError{Field: "type", Message: "tipo de transacción inválido: " + tx.Type}
		}
	}

	// Excluir posiciones cerradas o en corto
	for stockID, pos := range positions {
		if pos.Quantity <= 0 {
			delete(positions, stockID)
		}
	}

	return positions, nil
}

// sortedStockIDs devuelve las claves del mapa ordenadas, para que las
// tenencias salgan siempre en el mismo orden
func sortedStockIDs(positions map[string]Position) []string {
	ids := make([]string, 0, len(positions))
	for id := range positions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
