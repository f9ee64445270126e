package serviceImp

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"akolite/entities"
	"akolite/pkg/apperr"
	"akolite/pkg/batch/service"
	capacityrepo "akolite/pkg/capacity/repository"
	"akolite/pkg/keylock"
	"akolite/pkg/materials"
	orderrepo "akolite/pkg/order/repository"
	orderRepoImp "akolite/pkg/order/repositoryImp"
	unitRepoImp "akolite/pkg/production/repositoryImp"
	"akolite/pkg/recipe"
)

type BatchSvc struct {
	db       *gorm.DB
	capacity capacityrepo.CapacityRepository
	recipes  recipe.Book
	ledger   materials.Ledger
	locks    *keylock.Mutex
}

func New(db *gorm.DB, cap capacityrepo.CapacityRepository, recipes recipe.Book,
	ledger materials.Ledger, locks *keylock.Mutex) service.Service {
	return &BatchSvc{db: db, capacity: cap, recipes: recipes, ledger: ledger, locks: locks}
}

func (s *BatchSvc) Generate(resinType, scheduledDate string) ([]entities.ProductionUnit, error) {
	if strings.TrimSpace(resinType) == "" {
		return nil, apperr.New(apperr.InvalidConfiguration, "resin_type is required")
	}
	if _, err := time.Parse("2006-01-02", scheduledDate); err != nil {
		return nil, apperr.New(apperr.InvalidConfiguration, "scheduled_date must be YYYY-MM-DD")
	}
	defer s.locks.Lock("generate|" + resinType + "|" + scheduledDate)()

	capacityL, err := s.capacity.Get(resinType)
	if err != nil {
		return nil, err
	}
	if capacityL <= 0 {
		return nil, apperr.Newf(apperr.InvalidConfiguration,
			"batch capacity for %q must be positive, got %.0f", resinType, capacityL)
	}

	created := []entities.ProductionUnit{}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		units := unitRepoImp.New(tx)
		orders := orderRepoImp.New(tx)
		led := s.ledger.WithTx(tx)

		// Discard still-pending batches from a previous run: their
		// allocations go back to the order queue and their materials back
		// to the ledger. Rolling back the transaction restores them, so a
		// failed rebuild never loses the previous partition.
		prior, err := units.PendingBatches(resinType, scheduledDate)
		if err != nil {
			return err
		}
		discarded := make([]uint, 0, len(prior))
		for i := range prior {
			for _, a := range prior[i].Allocations {
				if err := revertAllocation(orders, a); err != nil {
					return err
				}
			}
			if err := led.Release(prior[i].MaterialsUsed); err != nil {
				return err
			}
			discarded = append(discarded, prior[i].UnitID)
		}
		if err := units.HardDelete(discarded); err != nil {
			return err
		}

		pending, err := orders.ListPending(resinType, scheduledDate)
		if err != nil {
			return err
		}
		if len(pending) == 0 {
			return nil
		}

		drafts := partition(pending, capacityL)
		now := time.Now()
		datePart := strings.ReplaceAll(scheduledDate, "-", "")
		for i, d := range drafts {
			u := entities.ProductionUnit{
				ResinType:     resinType,
				TotalQuantity: d.total,
				Unit:          pending[0].Unit,
				IsBatch:       true,
				BatchNumber:   fmt.Sprintf("B%s-%d", datePart, i+1),
				ScheduledDate: scheduledDate,
				Status:        entities.UnitPending,
				Allocations:   d.allocs,
				MaterialsUsed: s.recipes.MaterialsFor(resinType, d.total),
				ProducedAt:    now,
			}
			if err := led.Reserve(u.MaterialsUsed); err != nil {
				return err
			}
			if err := units.Create(&u); err != nil {
				return err
			}
			created = append(created, u)
		}
		for i := range pending {
			if err := orders.Save(&pending[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func revertAllocation(orders orderrepo.OrderRepository, a entities.Allocation) error {
	o, err := orders.FindByID(a.OrderID)
	if err != nil {
		return err
	}
	o.FulfilledQty -= a.Litres
	if o.FulfilledQty < 0 {
		o.FulfilledQty = 0
	}
	if o.FulfilledQty < o.Quantity {
		o.Status = entities.OrderPending
	}
	return orders.Save(o)
}

type batchDraft struct {
	total  float64
	allocs []entities.Allocation
}

// partition walks the FIFO order queue filling one accumulator batch at a
// time, splitting an order whenever it crosses the capacity boundary.
// Orders are mutated in place (fulfilled quantity, status) so the caller
// can persist the consumption alongside the new batches.
//
// Display-number rule: an allocation is suffixed C{seq} iff its litres are
// less than the order's full quantity, i.e. the order was split across
// units; an order that exactly fills a batch keeps its bare number.
func partition(orders []entities.Order, capacityLitres float64) []batchDraft {
	var out []batchDraft
	cur := batchDraft{}
	seq := 1
	closeBatch := func() {
		out = append(out, cur)
		cur = batchDraft{}
		seq = 1
	}
	for i := range orders {
		o := &orders[i]
		remaining := o.Remaining()
		for remaining > 0 {
			space := capacityLitres - cur.total
			if space <= 0 {
				closeBatch()
				continue
			}
			take := remaining
			if space < take {
				take = space
			}
			display := o.OrderNumber
			if take < o.Quantity {
				display = fmt.Sprintf("%sC%d", o.OrderNumber, seq)
			}
			cur.allocs = append(cur.allocs, entities.Allocation{
				ClientSeq:          seq,
				ClientName:         o.ClientName,
				OrderID:            o.OrderID,
				OrderNumber:        o.OrderNumber,
				DisplayOrderNumber: display,
				Litres:             take,
				Unit:               o.Unit,
			})
			cur.total += take
			remaining -= take
			o.FulfilledQty += take
			seq++
		}
		o.Status = entities.OrderBatched
	}
	if len(cur.allocs) > 0 {
		closeBatch()
	}
	return out
}
