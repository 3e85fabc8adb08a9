package main

import (
	"newsline/config"
	"newsline/models"
	"newsline/routes"
	"newsline/store"
	"newsline/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(&models.User{}, &models.News{}, &models.Comment{})
	stores := store.New(db)

	r := routes.SetupRouter(stores)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
