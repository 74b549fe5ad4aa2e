package domain

import "time"

// Status is the lifecycle state shown on a project's badge.
type Status string

const (
	StatusActive Status = "active"
	StatusLate   Status = "late"
	StatusDone   Status = "done"
)

// Statuses lists every known status in display order.
var Statuses = []Status{StatusActive, StatusLate, StatusDone}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusLate, StatusDone:
		return true
	}
	return false
}

// Managers is the allow-list of people a project can be assigned to.
var Managers = []string{"Ayrton Senna", "Mike Tyson", "Elon Musk"}

// ProgressPoint is one month of a project's progress series.
type ProgressPoint struct {
	Month     string `json:"month"`
	Primary   int    `json:"primary"`
	Secondary int    `json:"secondary"`
}

// ProjectDetail carries the status and the completion derived from the series.
type ProjectDetail struct {
	Status               Status `json:"status"`
	CompletionPercentage int    `json:"completion_percentage"`
}

type Project struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Progress    []ProgressPoint `json:"progress"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	Manager     string          `json:"manager"`
	Detail      ProjectDetail   `json:"detail"`
	Description string          `json:"description"`
}

// Company owns its projects; the slice is append-only in creation order.
type Company struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Projects []Project `json:"projects"`
}

// NewProjectInput is what the creation form hands to the core.
//
// The core trusts these fields: a non-empty name of at most 50 characters,
// EndDate not before StartDate, a manager from Managers and a description of
// at most 500 characters are checked by the form layer before this point.
// Status and Progress are optional.
type NewProjectInput struct {
	Name        string
	StartDate   time.Time
	EndDate     time.Time
	Manager     string
	Description string
	Status      Status
	Progress    []ProgressPoint
}

// Clone returns a deep copy of p.
func (p Project) Clone() Project {
	out := p
	if p.Progress != nil {
		out.Progress = append([]ProgressPoint(nil), p.Progress...)
	}
	return out
}

// Clone returns a deep copy of c, projects and series included.
func (c Company) Clone() Company {
	out := Company{ID: c.ID, Name: c.Name, Projects: make([]Project, len(c.Projects))}
	for i, p := range c.Projects {
		out.Projects[i] = p.Clone()
	}
	return out
}
