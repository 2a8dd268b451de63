package services

import (
	"sort"

	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/models"
)

// DataSource define las lecturas que necesita el agregador. El agregador
// solo toma prestados los datos durante un cálculo: no muta nada y los
// resultados no guardan referencias al almacenamiento.
type DataSource interface {
	ListPortfolios(userID string) ([]models.Portfolio, error)
	ListTransactions(portfolioID string) ([]models.Transaction, error)
	LatestPrice(stockID string) (*models.StockPrice, error)
	PriceOnDate(stockID, day string) (*models.StockPrice, error)
	DistinctPriceDates() ([]string, error)
	ListPricesForStocks(stockIDs []string) ([]models.StockPrice, error)
}

// SnapshotService calcula el snapshot completo del portafolio de un usuario:
// tenencias y valor por portafolio, totales entre portafolios y la serie
// diaria de valor agregado.
type SnapshotService struct {
	source DataSource
	policy PricePolicy
}

func NewSnapshotService(source DataSource) *SnapshotService {
	return &SnapshotService{
		source: source,
		policy: PricePolicyExactDate,
	}
}

// WithPricePolicy cambia la política de precios de la serie diaria
func (s *SnapshotService) WithPricePolicy(policy PricePolicy) *SnapshotService {
	s.policy = policy
	return s
}

// ComputePortfolioSnapshot calcula el snapshot completo de un usuario.
// Es un cálculo puro una vez leídos los datos: sin estado compartido y sin
// recuperación interna. Cualquier lectura que falle aborta el cálculo
// completo y el error se propaga sin transformar: un snapshot parcial es
// peor que una falla clara.
func (s *SnapshotService) ComputePortfolioSnapshot(userID string) (*models.AggregateResult, error) {
	portfolios, err := s.source.ListPortfolios(userID)
	if err != nil {
		return nil, err
	}

	result := &models.AggregateResult{
		Portfolios: []models.PortfolioSummary{},
		Graph:      []models.GraphPoint{},
	}

	// Resolver tenencias y valuación de cada portafolio. Cada portafolio es
	// independiente y de solo lectura, así que el orden no importa.
	for _, portfolio := range portfolios {
		transactions, err := s.source.ListTransactions(portfolio.ID)
		if err != nil {
			return nil, err
		}

		positions, err := ResolveHoldings(transactions)
		if err != nil {
			return nil, err
		}

		summary, err := ValuePortfolio(portfolio, positions, s.source.LatestPrice)
		if err != nil {
			return nil, err
		}

		result.TotalInvested += summary.Invested
		result.CurrentTotalValue += summary.CurrentValue
		result.Portfolios = append(result.Portfolios, summary)
	}

	// Armar el índice de precios en una sola pasada y construir las series
	dates, err := s.source.DistinctPriceDates()
	if err != nil {
		return nil, err
	}

	prices, err := s.source.ListPricesForStocks(heldStockIDs(result.Portfolios))
	if err != nil {
		return nil, err
	}

	index := BuildPriceIndex(prices)

	// Un punto por fecha por portafolio, y una serie combinada con las
	// tenencias de todos los portafolios
	allHoldings := []models.Holding{}
	for i := range result.Portfolios {
		result.Portfolios[i].Graph = BuildValueSeries(dates, result.Portfolios[i].Holdings, index, s.policy)
		allHoldings = append(allHoldings, result.Portfolios[i].Holdings...)
	}

	result.Graph = BuildValueSeries(dates, allHoldings, index, s.policy)

	return result, nil
}

// heldStockIDs junta los tickers con tenencias abiertas en cualquier
// portafolio, sin duplicados
func heldStockIDs(portfolios []models.PortfolioSummary) []string {
	seen := map[string]bool{}
	ids := []string{}
	for _, p := range portfolios {
		for _, h := range p.Holdings {
			if !seen[h.StockID] {
				seen[h.StockID] = true
				ids = append(ids, h.StockID)
			}
		}
	}
	sort.Strings(ids)
	return ids
}
