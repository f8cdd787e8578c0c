package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/JaimeStill/load-planner/internal/catalog"
	"github.com/JaimeStill/load-planner/internal/config"
	"github.com/JaimeStill/load-planner/internal/migrations"
	"github.com/JaimeStill/load-planner/internal/packing"
	"github.com/JaimeStill/load-planner/internal/plans"
	"github.com/JaimeStill/load-planner/pkg/database"
	"github.com/JaimeStill/load-planner/pkg/logging"
	"github.com/JaimeStill/load-planner/pkg/storage"
)

func main() {
	var (
		all      = flag.Bool("all", false, "Run all seeders")
		products = flag.Bool("catalog", false, "Seed the product catalog")
		samples  = flag.Bool("plans", false, "Seed example plans")
		file     = flag.String("file", "", "External catalog file (overrides embedded)")
		list     = flag.Bool("list", false, "List available seeders")
	)
	flag.Parse()

	if *list {
		fmt.Println("Available seeders:")
		for _, s := range listSeeders() {
			fmt.Printf("  - %s: %s\n", s.Name(), s.Description())
		}
		return
	}

	if !*all && !*products && !*samples {
		fmt.Println("usage: seed [-all|-catalog|-plans] [-file <path>] [-list]")
		flag.PrintDefaults()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	ctx := context.Background()
	logger := logging.New(&cfg.Logging)

	store, err := storage.New(ctx, &cfg.Storage, logger)
	if err != nil {
		log.Fatalf("storage init failed: %v", err)
	}

	target := &Target{
		Catalog: catalog.New(store, &cfg.Catalog, logger),
	}

	if *all || *samples {
		if err := database.Migrate(&cfg.Database, migrations.FS); err != nil {
			log.Fatalf("migration failed: %v", err)
		}

		db, err := database.New(&cfg.Database, nil, logger)
		if err != nil {
			log.Fatalf("database init failed: %v", err)
		}
		defer db.Connection().Close()

		target.Plans = plans.New(
			db.Connection(),
			target.Catalog,
			packing.New(cfg.Packing.Options()),
			nil,
			logger,
			cfg.API.Pagination,
		)
	}

	if *file != "" {
		if seeder, ok := getSeeder("catalog"); ok {
			seeder.(*CatalogSeeder).SetFile(*file)
		}
	}

	switch {
	case *all:
		err = runAllSeeders(ctx, target)
	case *products:
		err = runSeeder(ctx, target, "catalog")
	default:
		err = runSeeder(ctx, target, "plans")
	}
	if err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	fmt.Println("seeding completed successfully")
}
