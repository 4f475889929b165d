package main

import (
	"github.com/cybershieldpro/backend/blog"
	"github.com/cybershieldpro/backend/config"
	"github.com/cybershieldpro/backend/models"
	"github.com/cybershieldpro/backend/routes"
	"github.com/cybershieldpro/backend/store"
	"github.com/cybershieldpro/backend/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	loader := blog.NewLoader(cfg.ContentDir)
	settings := store.NewSettingsStore(cfg.SettingsFile)

	// Careers store: flat JSON file by default, MySQL when configured.
	var jobs store.JobRepository
	if cfg.HasDatabase() {
		db := config.InitDatabase(&models.JobPosting{})
		jobs = store.NewGormJobStore(db)
		utils.Sugar.Info("careers store backed by MySQL")
	} else {
		jobs = store.NewFileJobStore(cfg.JobsFile)
		utils.Sugar.Infof("careers store backed by %s", cfg.JobsFile)
	}

	r := routes.SetupRouter(loader, jobs, settings)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
