package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/config"
	"helpdesk/internal/database"
	"helpdesk/internal/middleware"
	"helpdesk/internal/modules/catalog"
	"helpdesk/internal/modules/client"
	"helpdesk/internal/modules/dashboard"
	"helpdesk/internal/modules/technician"
	"helpdesk/internal/modules/ticket"
	"helpdesk/internal/repository"
	"helpdesk/internal/seed"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}
	if err := seed.Run(db); err != nil {
		log.Fatal(err)
	}

	technicianRepo := repository.NewTechnicianRepository(db)
	clientRepo := repository.NewClientRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	technicianHandler := technician.NewHandler(technician.NewService(technicianRepo))
	clientHandler := client.NewHandler(client.NewService(clientRepo))
	ticketHandler := ticket.NewHandler(ticket.NewService(
		ticketRepo,
		activityRepo,
		catalogRepo,
		clientRepo,
		technicianRepo,
	))
	dashboardHandler := dashboard.NewHandler(dashboard.NewService(
		ticketRepo,
		technicianRepo,
		clientRepo,
	))
	catalogHandler := catalog.NewHandler(catalog.NewService(catalogRepo))

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		technicianHandler.RegisterRoutes(v1)
		clientHandler.RegisterRoutes(v1)
		ticketHandler.RegisterRoutes(v1)
		dashboardHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
	}

	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal(err)
	}
}
