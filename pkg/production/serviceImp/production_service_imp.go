package serviceImp

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"akolite/entities"
	"akolite/pkg/apperr"
	"akolite/pkg/keylock"
	"akolite/pkg/materials"
	orderrepo "akolite/pkg/order/repository"
	orderRepoImp "akolite/pkg/order/repositoryImp"
	unitRepoImp "akolite/pkg/production/repositoryImp"
	"akolite/pkg/production/service"
	"akolite/pkg/recipe"
)

type ProductionSvc struct {
	db      *gorm.DB
	recipes recipe.Book
	ledger  materials.Ledger
	locks   *keylock.Mutex
}

func New(db *gorm.DB, recipes recipe.Book, ledger materials.Ledger, locks *keylock.Mutex) service.Service {
	return &ProductionSvc{db: db, recipes: recipes, ledger: ledger, locks: locks}
}

func unitKey(id uint) string { return fmt.Sprintf("unit|%d", id) }

func (s *ProductionSvc) CreateSingle(in service.CreateSingleInput) (*entities.ProductionUnit, error) {
	if strings.TrimSpace(in.ResinType) == "" {
		return nil, apperr.New(apperr.InvalidConfiguration, "resin_type is required")
	}
	if in.Quantity <= 0 {
		return nil, apperr.New(apperr.InvalidConfiguration, "quantity must be positive")
	}
	if in.Unit == "" {
		in.Unit = "L"
	}
	if in.ScheduledDate == "" {
		in.ScheduledDate = time.Now().Format("2006-01-02")
	}

	var out *entities.ProductionUnit
	err := s.db.Transaction(func(tx *gorm.DB) error {
		units := unitRepoImp.New(tx)
		orders := orderRepoImp.New(tx)

		clientName := in.ClientName
		orderNumber := in.OrderNumber
		if in.FromOrderID != nil {
			o, err := orders.FindByID(*in.FromOrderID)
			if err != nil {
				return err
			}
			if clientName == "" {
				clientName = o.ClientName
			}
			if orderNumber == "" {
				orderNumber = o.OrderNumber
			}
			o.FulfilledQty += in.Quantity
			if o.FulfilledQty > o.Quantity {
				o.FulfilledQty = o.Quantity
			}
			if o.Remaining() == 0 {
				o.Status = entities.OrderBatched
			}
			if err := orders.Save(o); err != nil {
				return err
			}
		}
		if strings.TrimSpace(clientName) == "" {
			return apperr.New(apperr.InvalidConfiguration, "client_name is required")
		}

		u := &entities.ProductionUnit{
			ResinType:     in.ResinType,
			TotalQuantity: in.Quantity,
			Unit:          in.Unit,
			IsBatch:       false,
			ScheduledDate: in.ScheduledDate,
			Status:        entities.UnitPending,
			ClientName:    clientName,
			OrderNumber:   orderNumber,
			FromOrderID:   in.FromOrderID,
			MaterialsUsed: s.recipes.MaterialsFor(in.ResinType, in.Quantity),
			ProducedAt:    time.Now(),
		}
		// reservation failure aborts the whole creation
		if err := s.ledger.WithTx(tx).Reserve(u.MaterialsUsed); err != nil {
			return err
		}
		if err := units.Create(u); err != nil {
			return err
		}
		out = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ProductionSvc) Proceed(id uint) (*entities.ProductionUnit, error) {
	return s.advance(id, entities.UnitPending, entities.UnitInProcess)
}

func (s *ProductionSvc) Complete(id uint) (*entities.ProductionUnit, error) {
	return s.advance(id, entities.UnitInProcess, entities.UnitDone)
}

func (s *ProductionSvc) advance(id uint, from, to string) (*entities.ProductionUnit, error) {
	defer s.locks.Lock(unitKey(id))()

	var out *entities.ProductionUnit
	err := s.db.Transaction(func(tx *gorm.DB) error {
		units := unitRepoImp.New(tx)
		orders := orderRepoImp.New(tx)

		u, err := units.FindByID(id)
		if err != nil {
			return err
		}
		if u.Status != from {
			return apperr.Newf(apperr.InvalidStateTransition,
				"unit %d is %s, expected %s", id, u.Status, from)
		}
		now := time.Now()
		u.Status = to
		switch to {
		case entities.UnitInProcess:
			u.ProceededAt = &now
			// proceeding advances every source order implicitly
			if err := s.markOrdersInProgress(orders, u); err != nil {
				return err
			}
		case entities.UnitDone:
			u.CompletedAt = &now
		}
		if err := units.Save(u); err != nil {
			return err
		}
		out = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ProductionSvc) markOrdersInProgress(orders orderrepo.OrderRepository, u *entities.ProductionUnit) error {
	ids := []uint{}
	if b, ok := u.Batch(); ok {
		for _, a := range b.Allocations {
			ids = append(ids, a.OrderID)
		}
	} else if u.FromOrderID != nil {
		ids = append(ids, *u.FromOrderID)
	}
	for _, oid := range ids {
		o, err := orders.FindByID(oid)
		if err != nil {
			return err
		}
		if o.Status == entities.OrderBatched {
			o.Status = entities.OrderInProgress
			if err := orders.Save(o); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *ProductionSvc) Delete(id uint) error {
	defer s.locks.Lock(unitKey(id))()

	return s.db.Transaction(func(tx *gorm.DB) error {
		units := unitRepoImp.New(tx)
		orders := orderRepoImp.New(tx)

		u, err := units.FindByID(id)
		if err != nil {
			return err
		}
		switch u.Status {
		case entities.UnitPending, entities.UnitInProcess, entities.UnitDone:
		default:
			return apperr.Newf(apperr.InvalidStateTransition,
				"unit %d is %s and can no longer be deleted", id, u.Status)
		}

		if err := s.ledger.WithTx(tx).Release(u.MaterialsUsed); err != nil {
			return err
		}
		if b, ok := u.Batch(); ok {
			for _, a := range b.Allocations {
				if err := revertOrder(orders, a); err != nil {
					return err
				}
			}
		} else if u.FromOrderID != nil {
			if err := revertOrder(orders, entities.Allocation{
				OrderID: *u.FromOrderID, Litres: u.TotalQuantity,
			}); err != nil {
				return err
			}
		}

		now := time.Now()
		u.Status = entities.UnitDeleted
		u.DeletedAt = &now
		return units.Save(u)
	})
}

// revertOrder puts an allocation's quantity back on the order queue.
func revertOrder(orders orderrepo.OrderRepository, a entities.Allocation) error {
	o, err := orders.FindByID(a.OrderID)
	if err != nil {
		return err
	}
	o.FulfilledQty -= a.Litres
	if o.FulfilledQty < 0 {
		o.FulfilledQty = 0
	}
	if a.Dispatched {
		o.DispatchedQty -= a.Litres
		if o.DispatchedQty < 0 {
			o.DispatchedQty = 0
		}
	}
	if o.FulfilledQty < o.Quantity {
		o.Status = entities.OrderPending
	}
	return orders.Save(o)
}

func (s *ProductionSvc) List(status, resinType string) ([]entities.ProductionUnit, error) {
	return unitRepoImp.New(s.db).List(status, resinType)
}
