package main

import (
	"context"
	"flag"
	"log"

	"helpdesk/internal/config"
	"helpdesk/internal/database"
	"helpdesk/internal/generator"
	"helpdesk/internal/seed"
)

func main() {
	technicians := flag.Int("technicians", 10, "number of synthetic technicians to create")
	clients := flag.Int("clients", 20, "number of synthetic clients to create")
	tickets := flag.Int("tickets", 50, "number of synthetic tickets to create")
	flag.Parse()

	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("migration failed:", err)
	}
	if err := seed.Run(db); err != nil {
		log.Fatal("seed failed:", err)
	}

	gen := generator.New(db)
	if err := gen.Run(context.Background(), generator.Counts{
		Technicians: *technicians,
		Clients:     *clients,
		Tickets:     *tickets,
	}); err != nil {
		log.Fatal("generation failed:", err)
	}

	log.Println("Done.")
}
