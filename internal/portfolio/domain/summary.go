package domain

// CompanySummary is the listing-card view of a company.
type CompanySummary struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	ProjectCount      int    `json:"project_count"`
	AverageCompletion int    `json:"average_completion"`
}

// PortfolioSummary aggregates every company in the repository.
type PortfolioSummary struct {
	Companies         int            `json:"companies"`
	Projects          int            `json:"projects"`
	ByStatus          map[Status]int `json:"by_status"`
	AverageCompletion int            `json:"average_completion"`
}

func SummarizeCompany(c Company) CompanySummary {
	return CompanySummary{
		ID:                c.ID,
		Name:              c.Name,
		ProjectCount:      len(c.Projects),
		AverageCompletion: averageCompletion(c.Projects),
	}
}

func Summarize(companies []Company) PortfolioSummary {
	out := PortfolioSummary{
		Companies: len(companies),
		ByStatus:  make(map[Status]int, len(Statuses)),
	}
	for _, s := range Statuses {
		out.ByStatus[s] = 0
	}

	var all []Project
	for _, c := range companies {
		for _, p := range c.Projects {
			out.ByStatus[p.Detail.Status]++
		}
		all = append(all, c.Projects...)
	}
	out.Projects = len(all)
	out.AverageCompletion = averageCompletion(all)
	return out
}

// averageCompletion rounds half up, like CompletionPercentage.
func averageCompletion(projects []Project) int {
	if len(projects) == 0 {
		return 0
	}
	sum := 0
	for _, p := range projects {
		sum += p.Detail.CompletionPercentage
	}
	n := len(projects)
	return (2*sum + n) / (2 * n)
}
