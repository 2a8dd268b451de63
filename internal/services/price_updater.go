package services

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/models"
	"github.com/robfig/cron/v3"
)

// PriceWriter define las operaciones del repositorio que necesita el
// actualizador de precios
type PriceWriter interface {
	GetStocks() ([]models.Stock, error)
	GetLatestPrice(stockID string) (*models.StockPrice, error)
	CreatePrice(price *models.StockPrice) error
}

// PriceUpdater agrega una observación diaria de precio por acción para que
// la serie histórica siga avanzando. Los precios son una caminata aleatoria
// sobre la última observación; no hay ingesta de datos de mercado reales.
type PriceUpdater struct {
	repo         PriceWriter
	priceService *PriceService
	cron         *cron.Cron
}

func NewPriceUpdater(repo PriceWriter, priceService *PriceService) *PriceUpdater {
	return &PriceUpdater{
		repo:         repo,
		priceService: priceService,
		cron:         cron.New(),
	}
}

// Start programa la actualización diaria de precios
func (u *PriceUpdater) Start() error {
	if _, err := u.cron.AddFunc("@daily", u.run); err != nil {
		return err
	}

	u.cron.Start()
	log.Println("Actualizador de precios programado (diario)")
	return nil
}

// Stop detiene el actualizador
func (u *PriceUpdater) Stop() {
	u.cron.Stop()
}

func (u *PriceUpdater) run() {
	stocks, err := u.repo.GetStocks()
	if err != nil {
		log.Printf("Error al obtener acciones para actualizar precios: %v", err)
		return
	}

	for _, stock := range stocks {
		latest, err := u.repo.GetLatestPrice(stock.ID)
		if err != nil {
			log.Printf("Error al obtener el último precio de %s: %v", stock.ID, err)
			continue
		}

		if latest == nil {
			// Sin historial no hay de dónde continuar la caminata
			continue
		}

		// Fluctuación diaria de ±3%, con piso en 100
		fluctuation := rand.Float64()*0.06 - 0.03
		newPrice := int64(math.Max(100, math.Floor(float64(latest.Price)*(1+fluctuation))))

		price := &models.StockPrice{
			ID:      models.GenerateUUID(),
			StockID: stock.ID,
			Price:   newPrice,
			Date:    time.Now(),
		}

		if err := u.repo.CreatePrice(price); err != nil {
			log.Printf("Error al guardar el precio de %s: %v", stock.ID, err)
			continue
		}

		log.Printf("Precio de %s actualizado: %d -> %d", stock.ID, latest.Price, newPrice)
	}

	// Los precios cacheados quedaron viejos
	u.priceService.Flush()
}
