package http

import (
	"errors"
	"strings"
	"time"

	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/domain"
	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

// createProjectReq is the new-project form. Binding tags do the field checks;
// the date ordering and blank name checks run in toInput.
type createProjectReq struct {
	ProjectName string             `json:"projectName" binding:"required,max=50"`
	StartDate   string             `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate     string             `json:"endDate" binding:"required,datetime=2006-01-02"`
	Description string             `json:"description" binding:"required,max=500"`
	Responsible string             `json:"responsible" binding:"required,oneof='Ayrton Senna' 'Mike Tyson' 'Elon Musk'"`
	Status      string             `json:"status" binding:"omitempty,oneof=active late done"`
	Progress    []progressPointReq `json:"progress" binding:"omitempty,dive"`
}

// progressPointReq keeps the metrics as pointers so an absent or misnamed key
// fails binding instead of decoding as zero.
type progressPointReq struct {
	Month     string `json:"month"`
	Primary   *int   `json:"primary" binding:"required,min=0,max=100"`
	Secondary *int   `json:"secondary" binding:"required,min=0,max=100"`
}

// fieldErrors maps a form field to the message shown under it.
type fieldErrors map[string]string

var jsonNames = map[string]string{
	"ProjectName": "projectName",
	"StartDate":   "startDate",
	"EndDate":     "endDate",
	"Description": "description",
	"Responsible": "responsible",
	"Status":      "status",
}

var messages = map[string]string{
	"ProjectName.required": "O nome do projeto é obrigatório.",
	"ProjectName.max":      "Máximo de 50 caracteres.",
	"StartDate.required":   "A data de início é obrigatória.",
	"StartDate.datetime":   "A data de início é inválida.",
	"EndDate.required":     "A data de fim é obrigatória.",
	"EndDate.datetime":     "A data de fim é inválida.",
	"Description.required": "A descrição é obrigatória.",
	"Description.max":      "Máximo de 500 caracteres.",
	"Responsible.required": "O responsável é obrigatório.",
	"Responsible.oneof":    "Responsável inválido.",
	"Status.oneof":         "Status inválido!",
}

const (
	msgEndBeforeStart  = "A data de fim não pode ser anterior à data de início."
	msgInvalidProgress = "Série de progresso inválida."
)

// translate turns binding errors into per-field messages. ok is false when
// err is not a validation error (malformed JSON, wrong types).
func translate(err error) (fieldErrors, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	out := fieldErrors{}
	for _, fe := range verrs {
		if strings.Contains(fe.StructNamespace(), ".Progress[") {
			out["progress"] = msgInvalidProgress
			continue
		}
		name, ok := jsonNames[fe.StructField()]
		if !ok {
			name = fe.Field()
		}
		if _, seen := out[name]; seen {
			continue
		}
		msg, ok := messages[fe.StructField()+"."+fe.Tag()]
		if !ok {
			msg = fe.Error()
		}
		out[name] = msg
	}
	return out, true
}

// toInput runs the cross-field checks and converts the form.
func (r createProjectReq) toInput() (domain.NewProjectInput, fieldErrors) {
	errs := fieldErrors{}

	name := strings.TrimSpace(r.ProjectName)
	if name == "" {
		errs["projectName"] = messages["ProjectName.required"]
	}
	desc := strings.TrimSpace(r.Description)
	if desc == "" {
		errs["description"] = messages["Description.required"]
	}

	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		errs["startDate"] = messages["StartDate.datetime"]
	}
	end, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		errs["endDate"] = messages["EndDate.datetime"]
	}
	if _, bad := errs["startDate"]; !bad {
		if _, bad := errs["endDate"]; !bad && end.Before(start) {
			errs["endDate"] = msgEndBeforeStart
		}
	}

	if len(errs) > 0 {
		return domain.NewProjectInput{}, errs
	}

	return domain.NewProjectInput{
		Name:        name,
		StartDate:   start,
		EndDate:     end,
		Manager:     r.Responsible,
		Description: desc,
		Status:      domain.Status(r.Status),
		Progress:    r.progress(),
	}, nil
}

func (r createProjectReq) progress() []domain.ProgressPoint {
	if len(r.Progress) == 0 {
		return nil
	}
	out := make([]domain.ProgressPoint, len(r.Progress))
	for i, p := range r.Progress {
		out[i] = domain.ProgressPoint{Month: p.Month, Primary: *p.Primary, Secondary: *p.Secondary}
	}
	return out
}
