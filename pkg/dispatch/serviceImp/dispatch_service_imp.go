package serviceImp

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"akolite/entities"
	"akolite/pkg/apperr"
	clientsrepo "akolite/pkg/clients/repository"
	"akolite/pkg/dispatch/service"
	"akolite/pkg/keylock"
	orderrepo "akolite/pkg/order/repository"
	orderRepoImp "akolite/pkg/order/repositoryImp"
	unitRepoImp "akolite/pkg/production/repositoryImp"
)

type DispatchSvc struct {
	db      *gorm.DB
	clients clientsrepo.ClientsRepository
	locks   *keylock.Mutex
}

func New(db *gorm.DB, clients clientsrepo.ClientsRepository, locks *keylock.Mutex) service.Service {
	return &DispatchSvc{db: db, clients: clients, locks: locks}
}

func unitKey(id uint) string { return fmt.Sprintf("unit|%d", id) }

// requireDone guards every dispatch contract: the unit must sit in done.
func requireDone(u *entities.ProductionUnit) error {
	switch u.Status {
	case entities.UnitDone:
		return nil
	case entities.UnitDeployed:
		return apperr.Newf(apperr.AlreadyDispatched, "unit %d is already deployed", u.UnitID)
	default:
		return apperr.Newf(apperr.InvalidStateTransition,
			"unit %d is %s, dispatch requires done", u.UnitID, u.Status)
	}
}

func (s *DispatchSvc) DispatchSingle(unitID uint, quantity float64) (*service.Result, error) {
	defer s.locks.Lock(unitKey(unitID))()

	godown, err := s.clients.Godown()
	if err != nil {
		return nil, err
	}

	var res *service.Result
	err = s.db.Transaction(func(tx *gorm.DB) error {
		units := unitRepoImp.New(tx)
		u, err := units.FindByID(unitID)
		if err != nil {
			return err
		}
		single, ok := u.Single()
		if !ok {
			return apperr.Newf(apperr.InvalidStateTransition,
				"unit %d is a batch; dispatch it per allocation", unitID)
		}
		if err := requireDone(u); err != nil {
			return err
		}
		if quantity <= 0 || quantity > u.TotalQuantity {
			return apperr.Newf(apperr.InsufficientQuantity,
				"dispatch quantity %.2f out of range (0, %.2f]", quantity, u.TotalQuantity)
		}

		now := time.Now()
		recs := []entities.DispatchRecord{{
			OriginalProductionID: u.UnitID,
			ResinType:            u.ResinType,
			ClientName:           single.ClientName,
			Litres:               quantity,
			Unit:                 u.Unit,
			OrderNumber:          single.OrderNumber,
			DispatchTime:         now,
		}}
		if remainder := u.TotalQuantity - quantity; remainder > 0 {
			recs = append(recs, entities.DispatchRecord{
				OriginalProductionID: u.UnitID,
				ResinType:            u.ResinType,
				ClientName:           godown.Name,
				Litres:               remainder,
				Unit:                 u.Unit,
				OrderNumber:          single.OrderNumber,
				DispatchTime:         now,
			})
		}
		for i := range recs {
			if err := tx.Create(&recs[i]).Error; err != nil {
				return err
			}
		}

		u.Status = entities.UnitDeployed
		u.DeployedAt = &now
		if err := units.Save(u); err != nil {
			return err
		}
		if u.FromOrderID != nil {
			if err := applyOrderDispatch(orderRepoImp.New(tx), *u.FromOrderID, quantity); err != nil {
				return err
			}
		}
		res = &service.Result{Unit: u, Records: recs}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *DispatchSvc) DispatchBatch(batchID uint) (*service.Result, error) {
	defer s.locks.Lock(unitKey(batchID))()

	var res *service.Result
	err := s.db.Transaction(func(tx *gorm.DB) error {
		units := unitRepoImp.New(tx)
		orders := orderRepoImp.New(tx)

		u, err := units.FindByID(batchID)
		if err != nil {
			return err
		}
		if _, ok := u.Batch(); !ok {
			return apperr.Newf(apperr.InvalidStateTransition,
				"unit %d is not a batch", batchID)
		}
		if err := requireDone(u); err != nil {
			return err
		}

		now := time.Now()
		var recs []entities.DispatchRecord
		for i := range u.Allocations {
			a := &u.Allocations[i]
			if a.Dispatched {
				continue
			}
			rec, err := dispatchAllocationTx(tx, orders, u, a, now)
			if err != nil {
				return err
			}
			recs = append(recs, *rec)
		}
		if len(recs) == 0 {
			return apperr.Newf(apperr.AlreadyDispatched,
				"all allocations of batch %d are already dispatched", batchID)
		}
		u.Status = entities.UnitDeployed
		u.DeployedAt = &now
		if err := units.Save(u); err != nil {
			return err
		}
		res = &service.Result{Unit: u, Records: recs}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *DispatchSvc) DispatchAllocation(batchID uint, allocationIndex int) (*service.Result, error) {
	defer s.locks.Lock(unitKey(batchID))()

	var res *service.Result
	err := s.db.Transaction(func(tx *gorm.DB) error {
		units := unitRepoImp.New(tx)
		orders := orderRepoImp.New(tx)

		u, err := units.FindByID(batchID)
		if err != nil {
			return err
		}
		b, ok := u.Batch()
		if !ok {
			return apperr.Newf(apperr.InvalidStateTransition,
				"unit %d is not a batch", batchID)
		}
		if err := requireDone(u); err != nil {
			return err
		}
		if allocationIndex < 0 || allocationIndex >= len(u.Allocations) {
			return apperr.Newf(apperr.NotFound,
				"batch %d has no allocation %d", batchID, allocationIndex)
		}
		a := &u.Allocations[allocationIndex]
		if a.Dispatched {
			return apperr.Newf(apperr.AlreadyDispatched,
				"allocation %d of batch %d is already dispatched", allocationIndex, batchID)
		}

		now := time.Now()
		rec, err := dispatchAllocationTx(tx, orders, u, a, now)
		if err != nil {
			return err
		}
		if b.AllDispatched() {
			u.Status = entities.UnitDeployed
			u.DeployedAt = &now
		}
		if err := units.Save(u); err != nil {
			return err
		}
		res = &service.Result{Unit: u, Records: []entities.DispatchRecord{*rec}}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// dispatchAllocationTx emits the record for one allocation, marks it
// dispatched and rolls the litres up onto the source order.
func dispatchAllocationTx(tx *gorm.DB, orders orderrepo.OrderRepository,
	u *entities.ProductionUnit, a *entities.Allocation, now time.Time) (*entities.DispatchRecord, error) {
	rec := entities.DispatchRecord{
		OriginalProductionID: u.UnitID,
		ResinType:            u.ResinType,
		ClientName:           a.ClientName,
		Litres:               a.Litres,
		Unit:                 a.Unit,
		OrderNumber:          a.DisplayOrderNumber,
		DispatchTime:         now,
	}
	if err := tx.Create(&rec).Error; err != nil {
		return nil, err
	}
	a.Dispatched = true
	if err := applyOrderDispatch(orders, a.OrderID, a.Litres); err != nil {
		return nil, err
	}
	return &rec, nil
}

// applyOrderDispatch accumulates dispatched litres on the order and moves
// it to partially_dispatched or completed.
func applyOrderDispatch(orders orderrepo.OrderRepository, orderID uint, litres float64) error {
	if orderID == 0 {
		return nil
	}
	o, err := orders.FindByID(orderID)
	if err != nil {
		return err
	}
	o.DispatchedQty += litres
	if o.DispatchedQty >= o.Quantity {
		o.Status = entities.OrderCompleted
	} else {
		o.Status = entities.OrderPartiallyDispatched
	}
	return orders.Save(o)
}

func (s *DispatchSvc) Records(resinType, from, to string) ([]entities.DispatchRecord, error) {
	q := s.db.Model(&entities.DispatchRecord{})
	if resinType != "" {
		q = q.Where("resin_type = ?", resinType)
	}
	if from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			q = q.Where("dispatch_time >= ?", t)
		}
	}
	if to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			q = q.Where("dispatch_time < ?", t.AddDate(0, 0, 1))
		}
	}
	var out []entities.DispatchRecord
	return out, q.Order("dispatch_time DESC, record_id DESC").Find(&out).Error
}
