package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"akolite/config"
	"akolite/database"
	"akolite/router"

	// Orders
	orderCtrlImp "akolite/pkg/order/controllerImp"
	orderRepoImp "akolite/pkg/order/repositoryImp"

	// Capacity settings
	capCtrlImp "akolite/pkg/capacity/controllerImp"
	capRepoImp "akolite/pkg/capacity/repositoryImp"

	// Clients (Godown resolver)
	clientsRepoImp "akolite/pkg/clients/repositoryImp"

	// Batch builder
	batchCtrlImp "akolite/pkg/batch/controllerImp"
	batchSvcImp "akolite/pkg/batch/serviceImp"

	// Production lifecycle
	prodCtrlImp "akolite/pkg/production/controllerImp"
	prodSvcImp "akolite/pkg/production/serviceImp"

	// Dispatch engine
	dispCtrlImp "akolite/pkg/dispatch/controllerImp"
	dispSvcImp "akolite/pkg/dispatch/serviceImp"

	// Recipes / materials
	"akolite/pkg/keylock"
	"akolite/pkg/materials"
	"akolite/pkg/recipe"

	// Health
	healthCtrlImp "akolite/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate + seed (Godown client)
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 4) Recipe book (resin formulas)
	recipes, err := recipe.LoadFromFiles(cfg.RecipeCSV, cfg.RecipeXLSX)
	if err != nil {
		log.Printf("recipes warn: %v", err)
		recipes = recipe.Empty()
	}

	// 5) Materials ledger over the same store
	ledger := materials.NewGorm(db)

	// 6) Repos
	orderRepo := orderRepoImp.New(db)
	capRepo := capRepoImp.New(db)
	clientsRepo := clientsRepoImp.New(db)

	// 7) Services share one keyed lock so generate/lifecycle/dispatch on
	// the same unit serialize
	locks := keylock.New()
	batchSvc := batchSvcImp.New(db, capRepo, recipes, ledger, locks)
	prodSvc := prodSvcImp.New(db, recipes, ledger, locks)
	dispSvc := dispSvcImp.New(db, clientsRepo, locks)

	// 8) Controllers
	orderCtrl := orderCtrlImp.New(orderRepo)
	capCtrl := capCtrlImp.New(capRepo)
	batchCtrl := batchCtrlImp.New(batchSvc, dispSvc)
	prodCtrl := prodCtrlImp.New(prodSvc, dispSvc)
	dispCtrl := dispCtrlImp.New(dispSvc)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 9) Router
	r := router.New(e, orderCtrl, batchCtrl, capCtrl, prodCtrl, dispCtrl, hCtrl, cfg.AdminToken)

	// 10) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
