package repository

import (
	"fmt"
	"sync"

	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/domain"
)

// CompanyRepository is the in-memory owner of every company and project.
//
// Reads share a read lock and hand out deep copies; Seed, Reset and
// AddProject take the write lock. Project ids come from one counter shared
// by all companies, so they are unique across the repository.
type CompanyRepository struct {
	mu            sync.RWMutex
	companies     []*domain.Company
	factory       *domain.Factory
	nextProjectID int
	seeded        bool
}

// NewCompanyRepository creates an empty repository. The factory is only used
// under the write lock, so its random source need not be goroutine-safe.
func NewCompanyRepository(factory *domain.Factory) *CompanyRepository {
	return &CompanyRepository{
		factory:       factory,
		nextProjectID: 1,
	}
}

// Seed populates the repository once. Companies are named "Company N" with
// ids 1..numCompanies.
func (r *CompanyRepository) Seed(numCompanies, projectsPerCompany int) error {
	if numCompanies < 0 || projectsPerCompany < 0 {
		return fmt.Errorf("%w: companies=%d projects=%d", domain.ErrInvalidSeedSize, numCompanies, projectsPerCompany)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.seeded {
		return domain.ErrAlreadySeeded
	}

	companies := make([]*domain.Company, 0, numCompanies)
	for i := 0; i < numCompanies; i++ {
		c := &domain.Company{
			ID:       i + 1,
			Name:     fmt.Sprintf("Company %d", i+1),
			Projects: make([]domain.Project, 0, projectsPerCompany),
		}
		for j := 0; j < projectsPerCompany; j++ {
			c.Projects = append(c.Projects, r.factory.Random(r.takeProjectID(), j))
		}
		companies = append(companies, c)
	}

	r.companies = companies
	r.seeded = true
	return nil
}

// Reset drops all state so Seed can run again.
func (r *CompanyRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.companies = nil
	r.nextProjectID = 1
	r.seeded = false
}

// FindCompany returns a copy of the company with the given id.
func (r *CompanyRepository) FindCompany(id int) (domain.Company, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := r.find(id)
	if c == nil {
		return domain.Company{}, false
	}
	return c.Clone(), true
}

// ListCompanies returns copies of every company in id order.
func (r *CompanyRepository) ListCompanies() []domain.Company {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Company, len(r.companies))
	for i, c := range r.companies {
		out[i] = c.Clone()
	}
	return out
}

// AddProject appends a new project to the company. Nothing is modified when
// the company is missing or the supplied series is malformed; a missing
// company is reported first.
func (r *CompanyRepository) AddProject(companyID int, in domain.NewProjectInput) (domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.find(companyID)
	if c == nil {
		return domain.Project{}, fmt.Errorf("%w: id %d", domain.ErrCompanyNotFound, companyID)
	}

	if len(in.Progress) > 0 {
		series, err := domain.NormalizeSeries(in.Progress)
		if err != nil {
			return domain.Project{}, err
		}
		in.Progress = series
	}

	p := r.factory.Build(r.takeProjectID(), in)
	c.Projects = append(c.Projects, p)
	return p.Clone(), nil
}

// CountProjects returns the number of projects, or 0 for an unknown company.
func (r *CompanyRepository) CountProjects(companyID int) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if c := r.find(companyID); c != nil {
		return len(c.Projects)
	}
	return 0
}

// ProjectsForCompany returns copies of the company's projects in creation
// order; an unknown company yields an empty slice.
func (r *CompanyRepository) ProjectsForCompany(companyID int) []domain.Project {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := r.find(companyID)
	if c == nil {
		return []domain.Project{}
	}
	out := make([]domain.Project, len(c.Projects))
	for i, p := range c.Projects {
		out[i] = p.Clone()
	}
	return out
}

// ProjectByID looks a project up within one company's list only.
func (r *CompanyRepository) ProjectByID(companyID, projectID int) (domain.Project, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := r.find(companyID)
	if c == nil {
		return domain.Project{}, false
	}
	for _, p := range c.Projects {
		if p.ID == projectID {
			return p.Clone(), true
		}
	}
	return domain.Project{}, false
}

// find must be called with r.mu held.
func (r *CompanyRepository) find(id int) *domain.Company {
	for _, c := range r.companies {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// takeProjectID must be called with the write lock held.
func (r *CompanyRepository) takeProjectID() int {
	id := r.nextProjectID
	r.nextProjectID++
	return id
}
