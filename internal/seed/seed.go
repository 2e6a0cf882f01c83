package seed

import (
	"fmt"
	"log"
	"time"

	"helpdesk/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Run populates the master/reference tables and a small illustrative set of
// technicians and clients. Every section is guarded by an emptiness check,
// so running it on each start never duplicates rows.
func Run(db *gorm.DB) error {
	steps := []struct {
		name string
		fn   func(*gorm.DB) error
	}{
		{"work modes", workModes},
		{"priorities", priorities},
		{"ticket states", ticketStates},
		{"task types", taskTypes},
		{"technicians", technicians},
		{"clients", clients},
	}

	for _, step := range steps {
		if err := step.fn(db); err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
	}
	return nil
}

func tableEmpty(db *gorm.DB, model interface{}) (bool, error) {
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		return false, err
	}
	return n == 0, nil
}

func workModes(db *gorm.DB) error {
	empty, err := tableEmpty(db, &domain.WorkMode{})
	if err != nil || !empty {
		return err
	}
	log.Println("Seeding work modes...")
	modes := []domain.WorkMode{
		{Name: "On-site", Description: "Work performed at the client's premises", Active: true},
		{Name: "Remote", Description: "Work performed remotely", Active: true},
		{Name: "Hybrid", Description: "Combination of on-site and remote work", Active: true},
		{Name: "Phone", Description: "Phone support only", Active: true},
	}
	return db.Create(&modes).Error
}

func priorities(db *gorm.DB) error {
	empty, err := tableEmpty(db, &domain.Priority{})
	if err != nil || !empty {
		return err
	}
	log.Println("Seeding priorities...")
	priorities := []domain.Priority{
		{Name: "Critical", Level: 1, ColorHex: "#FF0000", Description: "Requires immediate attention"},
		{Name: "High", Level: 2, ColorHex: "#FF8000", Description: "Must be resolved within the day"},
		{Name: "Medium", Level: 3, ColorHex: "#FFFF00", Description: "Resolution within 2-3 days"},
		{Name: "Low", Level: 4, ColorHex: "#00FF00", Description: "Can wait up to a week"},
		{Name: "Very Low", Level: 5, ColorHex: "#0080FF", Description: "No specific urgency"},
	}
	return db.Create(&priorities).Error
}

func ticketStates(db *gorm.DB) error {
	empty, err := tableEmpty(db, &domain.TicketState{})
	if err != nil || !empty {
		return err
	}
	log.Println("Seeding ticket states...")
	states := []domain.TicketState{
		{Name: "New", Description: "Freshly created ticket", FlowOrder: 1},
		{Name: "Assigned", Description: "Ticket assigned to a technician", FlowOrder: 2},
		{Name: "In Progress", Description: "Technician working on the ticket", FlowOrder: 3},
		{Name: "Pending Client", Description: "Waiting for the client's response", FlowOrder: 4},
		{Name: "Resolved", Description: "Problem solved", IsFinal: true, FlowOrder: 5},
		{Name: "Closed", Description: "Ticket closed and archived", IsFinal: true, FlowOrder: 6},
		{Name: "Cancelled", Description: "Ticket cancelled", IsFinal: true, FlowOrder: 7},
	}
	return db.Create(&states).Error
}

func taskTypes(db *gorm.DB) error {
	empty, err := tableEmpty(db, &domain.TaskType{})
	if err != nil || !empty {
		return err
	}
	log.Println("Seeding task types...")
	types := []domain.TaskType{
		{Name: "End-user support", Description: "Direct assistance to users with technical issues", EstimatedHours: 1.5, DefaultPriority: "Medium", Active: true},
		{Name: "IT planning and scalability", Description: "Infrastructure and growth planning", EstimatedHours: 4.0, DefaultPriority: "High", Active: true},
		{Name: "Printer maintenance", Description: "Repair and maintenance of printing equipment", EstimatedHours: 1.0, DefaultPriority: "Low", Active: true},
		{Name: "Equipment upgrades", Description: "Hardware and software upgrades", EstimatedHours: 2.5, DefaultPriority: "Medium", Active: true},
		{Name: "Network configuration", Description: "Network setup and maintenance", EstimatedHours: 3.0, DefaultPriority: "High", Active: true},
		{Name: "Backup and recovery", Description: "Backup management", EstimatedHours: 2.0, DefaultPriority: "High", Active: true},
		{Name: "Software installation", Description: "Application installation and configuration", EstimatedHours: 1.5, DefaultPriority: "Medium", Active: true},
		{Name: "IT security", Description: "Implementation of security measures", EstimatedHours: 3.5, DefaultPriority: "Critical", Active: true},
		{Name: "Data migration", Description: "Data transfer and migration", EstimatedHours: 4.5, DefaultPriority: "High", Active: true},
		{Name: "Technical training", Description: "Training for users and technical staff", EstimatedHours: 2.0, DefaultPriority: "Low", Active: true},
	}
	return db.Create(&types).Error
}

func technicians(db *gorm.DB) error {
	empty, err := tableEmpty(db, &domain.Technician{})
	if err != nil || !empty {
		return err
	}
	log.Println("Seeding technicians...")

	hireDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	samples := []struct {
		first, last, email, login, password, phone, specialty string
	}{
		{"Dora", "Bermudez", "dora.b@example.com", "dora.b", "pass1", "+34111111111", "Infrastructure"},
		{"Bienvenida", "Verdejo", "bienvenida.v@example.com", "bienvenida.v", "pass2", "+34222222222", "Databases"},
		{"Onofre", "Arino", "onofre.a@example.com", "onofre.a", "pass3", "+34333333333", "Cloud"},
		{"Aurelio", "Saenz", "aurelio.s@example.com", "aurelio.s", "pass4", "+34444444444", "Hardware"},
		{"Telmo", "Torrijos", "telmo.t@example.com", "telmo.t", "pass5", "+34555555555", "Backup"},
	}

	technicians := make([]domain.Technician, 0, len(samples))
	for _, s := range samples {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		technicians = append(technicians, domain.Technician{
			FirstName:    s.first,
			LastName:     s.last,
			Email:        s.email,
			Login:        s.login,
			PasswordHash: string(hash),
			Phone:        s.phone,
			Specialty:    s.specialty,
			HireDate:     hireDate,
			Active:       true,
		})
	}
	return db.Create(&technicians).Error
}

func clients(db *gorm.DB) error {
	empty, err := tableEmpty(db, &domain.Client{})
	if err != nil || !empty {
		return err
	}
	log.Println("Seeding clients...")
	clients := []domain.Client{
		{CompanyName: "Empresa Tech", ContactName: "Juan Perez", Email: "juan.p@tech.com", Phone: "+34900111222", Address: "Calle Mayor 1", City: "Madrid", Country: "Spain", Active: true},
		{CompanyName: "Soluciones Digitales", ContactName: "Ana Garcia", Email: "ana.g@digital.com", Phone: "+34900333444", Address: "Av. Principal 10", City: "Barcelona", Country: "Spain", Active: true},
		{CompanyName: "Innova Corp", ContactName: "Carlos Ruiz", Email: "carlos.r@innova.com", Phone: "+34900555666", Address: "Plaza Central 5", City: "Valencia", Country: "Spain", Active: true},
		{CompanyName: "Global Services", ContactName: "Laura Fernandez", Email: "laura.f@global.com", Phone: "+34900777888", Address: "Calle Luna 15", City: "Sevilla", Country: "Spain", Active: true},
		{CompanyName: "Tech Solutions", ContactName: "Pedro Gomez", Email: "pedro.g@techsol.com", Phone: "+34900999000", Address: "Av. Sol 20", City: "Bilbao", Country: "Spain", Active: true},
	}
	return db.Create(&clients).Error
}
