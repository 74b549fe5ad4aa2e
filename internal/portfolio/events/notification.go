package events

import (
	"context"
	"fmt"
	"time"

	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/domain"
)

// RecentLimit caps how many notifications are kept per company.
const RecentLimit = 20

// Notification is the "project created" message shown to dashboard users.
type Notification struct {
	CompanyID   int       `json:"company_id"`
	ProjectID   int       `json:"project_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"created_at"`
}

// Notifier fans project events out to listeners and remembers the latest ones.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
	Recent(ctx context.Context, companyID int) ([]Notification, error)
}

// ProjectCreated builds the notification for a freshly added project.
func ProjectCreated(companyID int, companyName string, p domain.Project, at time.Time) Notification {
	return Notification{
		CompanyID:   companyID,
		ProjectID:   p.ID,
		Title:       "Novo Projeto Criado com sucesso! ✅",
		Description: fmt.Sprintf("Clique abaixo para acessar os projetos de %s", companyName),
		Link:        fmt.Sprintf("/admin/project/%d", companyID),
		CreatedAt:   at.UTC(),
	}
}
