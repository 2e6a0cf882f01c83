package generator

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"helpdesk/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Generator inserts randomized but schema-valid technicians, clients and
// tickets for demos and load testing. Foreign keys are drawn only from IDs
// that already exist, so the seed loader must have run first.
type Generator struct {
	db  *gorm.DB
	rng *rand.Rand
}

func New(db *gorm.DB) *Generator {
	return &Generator{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

type Counts struct {
	Technicians int
	Clients     int
	Tickets     int
}

var (
	specialties = []string{"Networks", "Systems", "Databases", "Security", "Support"}
	cities      = []string{"Madrid", "Barcelona", "Valencia", "Sevilla", "Bilbao", "Zaragoza", "Malaga", "Murcia", "Palma", "Las Palmas"}
)

// Run aborts before touching the ticket table when any reference category
// is empty, so a failed run never leaves partial data behind.
func (g *Generator) Run(ctx context.Context, counts Counts) error {
	if err := g.checkMasterData(ctx); err != nil {
		return err
	}

	if err := g.createTechnicians(ctx, counts.Technicians); err != nil {
		return err
	}
	if err := g.createClients(ctx, counts.Clients); err != nil {
		return err
	}

	return g.createTickets(ctx, counts.Tickets)
}

func (g *Generator) checkMasterData(ctx context.Context) error {
	checks := []struct {
		name  string
		model interface{}
	}{
		{"task types", &domain.TaskType{}},
		{"priorities", &domain.Priority{}},
		{"ticket states", &domain.TicketState{}},
	}
	for _, check := range checks {
		var n int64
		if err := g.db.WithContext(ctx).Model(check.model).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("no %s in database; run the seed loader first", check.name)
		}
	}
	return nil
}

func (g *Generator) createTechnicians(ctx context.Context, n int) error {
	if n <= 0 {
		return nil
	}
	log.Printf("Generating %d technicians...", n)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	technicians := make([]domain.Technician, 0, n)
	for i := 1; i <= n; i++ {
		hireDays := 365 + g.rng.Intn(365*4)
		technicians = append(technicians, domain.Technician{
			FirstName:    fmt.Sprintf("Technician%d", i),
			LastName:     string(rune('A' + i%26)),
			Email:        fmt.Sprintf("technician%d@example.com", i),
			Login:        fmt.Sprintf("tech%d", i),
			PasswordHash: string(hash),
			Phone:        fmt.Sprintf("+34 600 000 %03d", i),
			Specialty:    specialties[g.rng.Intn(len(specialties))],
			HireDate:     time.Now().AddDate(0, 0, -hireDays),
			Active:       true,
		})
	}

	// A re-run hits the unique email/login indexes; existing rows stay.
	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&technicians).Error
}

func (g *Generator) createClients(ctx context.Context, n int) error {
	if n <= 0 {
		return nil
	}
	log.Printf("Generating %d clients...", n)

	clients := make([]domain.Client, 0, n)
	for i := 1; i <= n; i++ {
		clients = append(clients, domain.Client{
			CompanyName: fmt.Sprintf("Client Company %d", i),
			ContactName: fmt.Sprintf("Contact %c %c", 'A'+i%26, 'B'+(i+1)%26),
			Email:       fmt.Sprintf("contact%d@company%d.com", i, i),
			Phone:       fmt.Sprintf("+34 910 000 %03d", i),
			Address:     fmt.Sprintf("Fake Street %d, Floor %d", i, 1+g.rng.Intn(10)),
			City:        cities[g.rng.Intn(len(cities))],
			Country:     "Spain",
			Active:      true,
		})
	}
	return g.db.WithContext(ctx).Create(&clients).Error
}

func (g *Generator) createTickets(ctx context.Context, n int) error {
	if n <= 0 {
		return nil
	}

	technicianIDs, err := g.ids(ctx, &domain.Technician{}, "technicians")
	if err != nil {
		return err
	}
	clientIDs, err := g.ids(ctx, &domain.Client{}, "clients")
	if err != nil {
		return err
	}
	taskTypeIDs, err := g.ids(ctx, &domain.TaskType{}, "task types")
	if err != nil {
		return err
	}
	priorityIDs, err := g.ids(ctx, &domain.Priority{}, "priorities")
	if err != nil {
		return err
	}

	var states []domain.TicketState
	if err := g.db.WithContext(ctx).Find(&states).Error; err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no ticket states in database; run the seed loader first")
	}

	log.Printf("Generating %d tickets...", n)
	tickets := make([]domain.Ticket, 0, n)
	for i := 1; i <= n; i++ {
		state := states[g.rng.Intn(len(states))]
		createdAt := time.Now().AddDate(0, 0, -(1 + g.rng.Intn(30)))

		t := domain.Ticket{
			Number:         fmt.Sprintf("SYN-%04d", i),
			ClientID:       pick(g.rng, clientIDs),
			TaskTypeID:     pick(g.rng, taskTypeIDs),
			PriorityID:     pick(g.rng, priorityIDs),
			StateID:        state.ID,
			Title:          fmt.Sprintf("Synthetic test ticket #%d", i),
			Description:    fmt.Sprintf("Description of synthetic ticket %d, generated automatically.", i),
			EstimatedHours: math.Round((0.5+g.rng.Float64()*7.5)*100) / 100,
			CreatedAt:      createdAt,
		}

		// Roughly one ticket in N+1 stays unassigned.
		if g.rng.Intn(len(technicianIDs)+1) != 0 {
			id := pick(g.rng, technicianIDs)
			t.TechnicianID = &id
			assignedAt := createdAt.Add(time.Duration(1+g.rng.Intn(24)) * time.Hour)
			t.AssignedAt = &assignedAt
		}

		if state.IsFinal {
			base := createdAt
			if t.AssignedAt != nil {
				base = *t.AssignedAt
			}
			closedAt := base.
				AddDate(0, 0, g.rng.Intn(8)).
				Add(time.Duration(g.rng.Intn(24)) * time.Hour)
			t.ClosedAt = &closedAt
		}

		tickets = append(tickets, t)
	}

	// One transaction: either the whole batch lands or none of it does.
	// Re-runs collide on the unique ticket number and skip those rows.
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&tickets).Error
	})
}

func (g *Generator) ids(ctx context.Context, model interface{}, name string) ([]int64, error) {
	var ids []int64
	if err := g.db.WithContext(ctx).Model(model).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no %s in database; run the seed loader first", name)
	}
	return ids, nil
}

func pick(rng *rand.Rand, ids []int64) int64 {
	return ids[rng.Intn(len(ids))]
}
