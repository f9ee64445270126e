package serviceImp

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"akolite/database"
	"akolite/entities"
	"akolite/pkg/apperr"
	"akolite/pkg/keylock"
	"akolite/pkg/materials"
	"akolite/pkg/production/service"
	"akolite/pkg/recipe"
)

type stubBook struct{ perLitre float64 }

func (s stubBook) MaterialsFor(_ string, litres float64) []entities.MaterialLine {
	return []entities.MaterialLine{{Material: "Polyol", RequiredQty: s.perLitre * litres}}
}
func (s stubBook) Resins() []string { return nil }

func newSvc(t *testing.T) (*ProductionSvc, *gorm.DB, *materials.MockLedger) {
	t.Helper()
	db := database.OpenSQLite(":memory:")
	led := materials.NewMock()
	svc := New(db, stubBook{perLitre: 0.5}, led, keylock.New()).(*ProductionSvc)
	return svc, db, led
}

func mkSingle(t *testing.T, svc *ProductionSvc) *entities.ProductionUnit {
	t.Helper()
	u, err := svc.CreateSingle(service.CreateSingleInput{
		ResinType:  "PU-20",
		Quantity:   1000,
		ClientName: "Acme Coatings",
	})
	if err != nil {
		t.Fatalf("CreateSingle: %v", err)
	}
	return u
}

func TestCreateSingleSnapshotsAndReservesMaterials(t *testing.T) {
	svc, _, led := newSvc(t)
	u := mkSingle(t, svc)

	if u.Status != entities.UnitPending || u.IsBatch {
		t.Fatalf("unit = status %s isBatch %v", u.Status, u.IsBatch)
	}
	if len(u.MaterialsUsed) != 1 || u.MaterialsUsed[0].RequiredQty != 500 {
		t.Fatalf("materials snapshot = %+v, want Polyol 500", u.MaterialsUsed)
	}
	if len(led.Reserved) != 1 || led.Reserved[0].RequiredQty != 500 {
		t.Fatalf("ledger reserved = %+v", led.Reserved)
	}
}

func TestCreateSingleAbortsWhenLedgerFails(t *testing.T) {
	svc, db, led := newSvc(t)
	led.FailWith = apperr.New(apperr.InsufficientQuantity, "raw material \"Polyol\" not in stock")

	_, err := svc.CreateSingle(service.CreateSingleInput{
		ResinType: "PU-20", Quantity: 1000, ClientName: "Acme Coatings",
	})
	if !apperr.IsKind(err, apperr.InsufficientQuantity) {
		t.Fatalf("expected insufficient_quantity, got %v", err)
	}
	var count int64
	db.Model(&entities.ProductionUnit{}).Count(&count)
	if count != 0 {
		t.Fatalf("no unit may be persisted without its reservation, found %d", count)
	}
}

func TestCreateSingleFromOrderConsumesIt(t *testing.T) {
	svc, db, _ := newSvc(t)
	o := &entities.Order{
		OrderNumber: "ORD-9", ClientName: "Bright Floors", ResinType: "PU-20",
		Quantity: 1000, Unit: "L", ScheduledDate: "2026-09-01",
		Status: entities.OrderPending,
	}
	if err := db.Create(o).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}

	u, err := svc.CreateSingle(service.CreateSingleInput{
		ResinType: "PU-20", Quantity: 1000, FromOrderID: &o.OrderID,
	})
	if err != nil {
		t.Fatalf("CreateSingle: %v", err)
	}
	if u.ClientName != "Bright Floors" || u.OrderNumber != "ORD-9" {
		t.Errorf("client/order not inherited: %s %s", u.ClientName, u.OrderNumber)
	}
	var got entities.Order
	db.First(&got, o.OrderID)
	if got.FulfilledQty != 1000 || got.Status != entities.OrderBatched {
		t.Errorf("order = fulfilled %.0f status %s", got.FulfilledQty, got.Status)
	}
}

func TestLifecycleOrderingIsEnforced(t *testing.T) {
	svc, _, _ := newSvc(t)
	u := mkSingle(t, svc)

	if _, err := svc.Complete(u.UnitID); !apperr.IsKind(err, apperr.InvalidStateTransition) {
		t.Fatalf("complete before proceed: got %v", err)
	}

	u2, err := svc.Proceed(u.UnitID)
	if err != nil {
		t.Fatalf("Proceed: %v", err)
	}
	if u2.Status != entities.UnitInProcess || u2.ProceededAt == nil {
		t.Fatalf("after proceed: %s proceededAt=%v", u2.Status, u2.ProceededAt)
	}
	if _, err := svc.Proceed(u.UnitID); !apperr.IsKind(err, apperr.InvalidStateTransition) {
		t.Fatalf("double proceed: got %v", err)
	}

	u3, err := svc.Complete(u.UnitID)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if u3.Status != entities.UnitDone || u3.CompletedAt == nil {
		t.Fatalf("after complete: %s completedAt=%v", u3.Status, u3.CompletedAt)
	}
}

func TestDeleteReturnsMaterialsAndRevertsOrders(t *testing.T) {
	svc, db, led := newSvc(t)

	o1 := &entities.Order{OrderNumber: "ORD-1", ClientName: "Acme", ResinType: "PU-20",
		Quantity: 3000, FulfilledQty: 3000, Status: entities.OrderBatched, ScheduledDate: "2026-09-01"}
	o2 := &entities.Order{OrderNumber: "ORD-2", ClientName: "Bright", ResinType: "PU-20",
		Quantity: 4000, FulfilledQty: 2000, Status: entities.OrderPending, ScheduledDate: "2026-09-01"}
	for _, o := range []*entities.Order{o1, o2} {
		if err := db.Create(o).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	b := &entities.ProductionUnit{
		ResinType: "PU-20", TotalQuantity: 5000, Unit: "L", IsBatch: true,
		BatchNumber: "B20260901-1", ScheduledDate: "2026-09-01", Status: entities.UnitPending,
		Allocations: []entities.Allocation{
			{ClientSeq: 1, ClientName: "Acme", OrderID: o1.OrderID, OrderNumber: "ORD-1", DisplayOrderNumber: "ORD-1", Litres: 3000, Unit: "L"},
			{ClientSeq: 2, ClientName: "Bright", OrderID: o2.OrderID, OrderNumber: "ORD-2", DisplayOrderNumber: "ORD-2C2", Litres: 2000, Unit: "L"},
		},
		MaterialsUsed: []entities.MaterialLine{{Material: "Polyol", RequiredQty: 2500}},
		ProducedAt:    time.Now(),
	}
	if err := db.Create(b).Error; err != nil {
		t.Fatalf("seed batch: %v", err)
	}

	if err := svc.Delete(b.UnitID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if len(led.Released) != 1 || led.Released[0].RequiredQty != 2500 {
		t.Errorf("ledger released = %+v, want the full snapshot", led.Released)
	}
	var got1, got2 entities.Order
	db.First(&got1, o1.OrderID)
	db.First(&got2, o2.OrderID)
	if got1.FulfilledQty != 0 || got1.Status != entities.OrderPending {
		t.Errorf("order 1 = fulfilled %.0f status %s", got1.FulfilledQty, got1.Status)
	}
	if got2.FulfilledQty != 0 || got2.Status != entities.OrderPending {
		t.Errorf("order 2 = fulfilled %.0f status %s", got2.FulfilledQty, got2.Status)
	}

	var gotUnit entities.ProductionUnit
	db.First(&gotUnit, b.UnitID)
	if gotUnit.Status != entities.UnitDeleted || gotUnit.DeletedAt == nil {
		t.Errorf("unit = %s deletedAt=%v", gotUnit.Status, gotUnit.DeletedAt)
	}
}

func TestDeleteDeployedUnitRejected(t *testing.T) {
	svc, db, _ := newSvc(t)
	u := mkSingle(t, svc)
	now := time.Now()
	db.Model(&entities.ProductionUnit{}).Where("unit_id = ?", u.UnitID).
		Updates(map[string]any{"status": entities.UnitDeployed, "deployed_at": now})

	if err := svc.Delete(u.UnitID); !apperr.IsKind(err, apperr.InvalidStateTransition) {
		t.Fatalf("expected invalid_state_transition, got %v", err)
	}
}

func TestProceedMarksSourceOrdersInProgress(t *testing.T) {
	svc, db, _ := newSvc(t)
	o := &entities.Order{OrderNumber: "ORD-5", ClientName: "Acme", ResinType: "PU-20",
		Quantity: 2000, FulfilledQty: 2000, Status: entities.OrderBatched, ScheduledDate: "2026-09-01"}
	if err := db.Create(o).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	b := &entities.ProductionUnit{
		ResinType: "PU-20", TotalQuantity: 2000, Unit: "L", IsBatch: true,
		ScheduledDate: "2026-09-01", Status: entities.UnitPending,
		Allocations: []entities.Allocation{
			{ClientSeq: 1, ClientName: "Acme", OrderID: o.OrderID, OrderNumber: "ORD-5", DisplayOrderNumber: "ORD-5", Litres: 2000, Unit: "L"},
		},
		ProducedAt: time.Now(),
	}
	if err := db.Create(b).Error; err != nil {
		t.Fatalf("seed batch: %v", err)
	}

	if _, err := svc.Proceed(b.UnitID); err != nil {
		t.Fatalf("Proceed: %v", err)
	}
	var got entities.Order
	db.First(&got, o.OrderID)
	if got.Status != entities.OrderInProgress {
		t.Errorf("order status = %s, want in_progress", got.Status)
	}
}

var _ recipe.Book = stubBook{} // keep the stub honest
