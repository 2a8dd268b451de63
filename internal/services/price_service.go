package services

import (
	"time"

	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/models"
	"github.com/patrickmn/go-cache"
)

// LatestPriceSource define la lectura de precios que necesita el servicio
type LatestPriceSource interface {
	GetLatestPrice(stockID string) (*models.StockPrice, error)
}

// PriceService resuelve el precio más reciente de una acción con una caché
// en memoria para no repetir la consulta en cada valuación
type PriceService struct {
	source LatestPriceSource
	cache  *cache.Cache
}

func NewPriceService(source LatestPriceSource) *PriceService {
	return &PriceService{
		source: source,
		// Los precios se renuevan a diario, 5 minutos de caché alcanzan
		cache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

// GetLatestPrice devuelve el precio más reciente de una acción, o nil si no
// hay ninguno registrado. La ausencia de precio no se cachea.
func (s *PriceService) GetLatestPrice(stockID string) (*models.StockPrice, error) {
	if cached, found := s.cache.Get(stockID); found {
		return cached.(*models.StockPrice), nil
	}

	price, err := s.source.GetLatestPrice(stockID)
	if err != nil {
		return nil, err
	}

	if price != nil {
		s.cache.Set(stockID, price, cache.DefaultExpiration)
	}

	return price, nil
}

// Flush descarta todos los precios cacheados. Se invoca cuando se insertan
// observaciones nuevas.
func (s *PriceService) Flush() {
	s.cache.Flush()
}
