package models

// Holding representa una posición neta abierta en una acción dentro de un
// portafolio. Es un valor derivado: se calcula en cada consulta, nunca se
// persiste ni se cachea.
type Holding struct {
	StockID         string  `json:"stock_id"`
	Quantity        float64 `json:"quantity"`
	AccumulatedCost float64 `json:"accumulated_cost"`
	LatestPrice     int64   `json:"latest_price"`
	Value           float64 `json:"value"`
}

// GraphPoint es un punto de la serie diaria de valor agregado
type GraphPoint struct {
	Date  string  `json:"date"` // Fecha ISO sin componente de hora
	Price float64 `json:"price"`
}

// PortfolioSummary contiene los totales y tenencias de un portafolio
type PortfolioSummary struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	BaseCurrency string       `json:"base_currency"`
	Invested     float64      `json:"invested"`
	CurrentValue float64      `json:"current_value"`
	Gain         float64      `json:"gain"`
	Holdings     []Holding    `json:"holdings"`
	Graph        []GraphPoint `json:"graph"`
}

// AggregateResult es el resultado completo del cálculo de un snapshot:
// totales entre todos los portafolios del usuario más la serie diaria
// combinada de todas las tenencias.
type AggregateResult struct {
	TotalInvested     float64            `json:"total_invested"`
	CurrentTotalValue float64            `json:"current_total_value"`
	Portfolios        []PortfolioSummary `json:"portfolios"`
	Graph             []GraphPoint       `json:"graph"`
}
