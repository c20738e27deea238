package slot

import (
	"time"

	"lion_slot/internal/model"
	"lion_slot/internal/repository"
	"lion_slot/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"go.uber.org/zap"
)

type serv struct {
	catalog    *Catalog
	population []model.Symbol
	draw       DrawFunc

	accountRepo repository.AccountRepository
	statsRepo   repository.SlotStatsRepository
	txManager   trm.Manager

	log *zap.Logger
	now func() time.Time
}

// NewSlotService Создать автомат на три барабана.
// draw == nil означает UniformDraw
func NewSlotService(
	catalog *Catalog,
	draw DrawFunc,
	accountRepo repository.AccountRepository,
	statsRepo repository.SlotStatsRepository,
	txManager trm.Manager,
	log *zap.Logger,
) service.SlotService {
	if draw == nil {
		draw = UniformDraw
	}
	return &serv{
		catalog:     catalog,
		population:  catalog.Population(),
		draw:        draw,
		accountRepo: accountRepo,
		statsRepo:   statsRepo,
		txManager:   txManager,
		log:         log.With(zap.String("component", "service/slot")),
		now:         time.Now,
	}
}

func (s *serv) PayTable() []model.PayLine {
	return s.catalog.PayTable()
}

func (s *serv) Stats() model.SlotStats {
	return s.statsRepo.CasinoState()
}
