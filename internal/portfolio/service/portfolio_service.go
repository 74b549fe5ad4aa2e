package service

import (
	"context"
	"fmt"
	"time"

	"github.com/GoSim-25-26J-441/project-dashboard/internal/logging"
	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/domain"
	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/events"
	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/repository"
	"go.uber.org/zap"
)

// PortfolioService handles dashboard business logic on top of the repository
type PortfolioService struct {
	repo     *repository.CompanyRepository
	notifier events.Notifier
	logger   *zap.Logger
	now      func() time.Time
}

// NewPortfolioService creates a new portfolio service
func NewPortfolioService(repo *repository.CompanyRepository, notifier events.Notifier, logger *zap.Logger) *PortfolioService {
	if notifier == nil {
		notifier = events.NewMemoryNotifier()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PortfolioService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Seed fills the repository with mock companies
func (s *PortfolioService) Seed(numCompanies, projectsPerCompany int) error {
	if err := s.repo.Seed(numCompanies, projectsPerCompany); err != nil {
		return fmt.Errorf("seed repository: %w", err)
	}
	s.logger.Info("repository seeded",
		zap.Int("companies", numCompanies),
		zap.Int("projects_per_company", projectsPerCompany),
	)
	return nil
}

// ListCompanies returns every company with its projects
func (s *PortfolioService) ListCompanies() []domain.Company {
	return s.repo.ListCompanies()
}

// CompanySummaries returns the listing-card view of every company
func (s *PortfolioService) CompanySummaries() []domain.CompanySummary {
	companies := s.repo.ListCompanies()
	out := make([]domain.CompanySummary, 0, len(companies))
	for _, c := range companies {
		out = append(out, domain.SummarizeCompany(c))
	}
	return out
}

// GetCompany returns a company or ErrCompanyNotFound
func (s *PortfolioService) GetCompany(id int) (domain.Company, error) {
	c, ok := s.repo.FindCompany(id)
	if !ok {
		return domain.Company{}, fmt.Errorf("%w: id %d", domain.ErrCompanyNotFound, id)
	}
	return c, nil
}

// ProjectsForCompany lists a company's projects, failing for unknown companies
func (s *PortfolioService) ProjectsForCompany(companyID int) ([]domain.Project, error) {
	if _, err := s.GetCompany(companyID); err != nil {
		return nil, err
	}
	return s.repo.ProjectsForCompany(companyID), nil
}

// GetProject returns a project that belongs to the given company
func (s *PortfolioService) GetProject(companyID, projectID int) (domain.Project, error) {
	if _, err := s.GetCompany(companyID); err != nil {
		return domain.Project{}, err
	}
	p, ok := s.repo.ProjectByID(companyID, projectID)
	if !ok {
		return domain.Project{}, fmt.Errorf("%w: id %d in company %d", domain.ErrProjectNotFound, projectID, companyID)
	}
	return p, nil
}

// CountProjects returns the number of projects of a company, 0 when unknown
func (s *PortfolioService) CountProjects(companyID int) int {
	return s.repo.CountProjects(companyID)
}

// AddProject stores a new project and announces it. A failed announcement is
// logged and does not undo the creation.
func (s *PortfolioService) AddProject(ctx context.Context, companyID int, in domain.NewProjectInput) (domain.Project, events.Notification, error) {
	log := logging.FromContext(ctx, s.logger)

	p, err := s.repo.AddProject(companyID, in)
	if err != nil {
		return domain.Project{}, events.Notification{}, err
	}

	name := fmt.Sprintf("Company %d", companyID)
	if c, ok := s.repo.FindCompany(companyID); ok {
		name = c.Name
	}

	n := events.ProjectCreated(companyID, name, p, s.now())
	if err := s.notifier.Notify(ctx, n); err != nil {
		log.Warn("failed to publish project notification",
			zap.Int("company_id", companyID),
			zap.Int("project_id", p.ID),
			zap.Error(err),
		)
	}

	log.Info("project created",
		zap.Int("company_id", companyID),
		zap.Int("project_id", p.ID),
		zap.String("manager", p.Manager),
		zap.Int("completion", p.Detail.CompletionPercentage),
	)
	return p, n, nil
}

// Notifications returns the latest project notifications of a company
func (s *PortfolioService) Notifications(ctx context.Context, companyID int) ([]events.Notification, error) {
	if _, err := s.GetCompany(companyID); err != nil {
		return nil, err
	}
	items, err := s.notifier.Recent(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return items, nil
}

// Summary aggregates the whole portfolio
func (s *PortfolioService) Summary() domain.PortfolioSummary {
	return domain.Summarize(s.repo.ListCompanies())
}

// CompanySummary aggregates one company
func (s *PortfolioService) CompanySummary(companyID int) (domain.CompanySummary, error) {
	c, err := s.GetCompany(companyID)
	if err != nil {
		return domain.CompanySummary{}, err
	}
	return domain.SummarizeCompany(c), nil
}
