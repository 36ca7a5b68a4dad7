package web

import (
	"talent-sift/internal/domain"
)

// FieldView describes one input of the form
type FieldView struct {
	Name        string
	Label       string
	Placeholder string
	InputType   string // "text", "number" or "select"
	Value       string
	Error       string
	Options     []OptionView
}

// OptionView is one choice of a select input
type OptionView struct {
	Value    string
	Label    string
	Selected bool
}

// PageView is the data passed to page.tmpl
type PageView struct {
	Title         string
	Heading       string
	Highlight     string
	Tagline       string
	Action        string
	ResultTitle   string
	CSRFToken     string
	Loading       bool
	Fields        []FieldView
	Result        ResultView
	Notifications []domain.Notification
}

type modeCopy struct {
	heading     string
	highlight   string
	action      string
	resultTitle string
}

var copyByMode = map[domain.FormMode]modeCopy{
	domain.ModeInterviewQuestions: {
		heading:     "AI Generated",
		highlight:   "Interview Questions",
		action:      "/",
		resultTitle: "Generated Questions",
	},
	domain.ModeJobDescription: {
		heading:     "AI Generated",
		highlight:   "Job Description",
		action:      "/job-description",
		resultTitle: "Generated Job Description",
	},
}

var fieldCopy = map[string]struct {
	label       string
	placeholder string
	inputType   string
}{
	domain.FieldJobTitle:          {"Job Title", "e.g. Senior Frontend Developer", "text"},
	domain.FieldRequiredSkills:    {"Key Skills", "e.g. JAVA, REACT", "text"},
	domain.FieldMinExperience:     {"Min Experience", "e.g. 3", "number"},
	domain.FieldMaxExperience:     {"Max Experience", "e.g. 6", "number"},
	domain.FieldIndustry:          {"Industry", "e.g. Information Technology, Marketing", "text"},
	domain.FieldYearsOfExperience: {"Years of Experience", "e.g. 5", "number"},
	domain.FieldJobType:           {"Job Type", "Select job type", "select"},
}

func fieldValue(form domain.JobRequestForm, field string) string {
	switch field {
	case domain.FieldJobTitle:
		return form.JobTitle
	case domain.FieldRequiredSkills:
		return form.RequiredSkills
	case domain.FieldMinExperience:
		return form.MinExperience
	case domain.FieldMaxExperience:
		return form.MaxExperience
	case domain.FieldIndustry:
		return form.Industry
	case domain.FieldYearsOfExperience:
		return form.YearsOfExperience
	case domain.FieldJobType:
		return string(form.JobType)
	}
	return ""
}

func jobTypeOptions(selected domain.JobType) []OptionView {
	options := make([]OptionView, 0, len(domain.JobTypes))
	for _, t := range domain.JobTypes {
		options = append(options, OptionView{
			Value:    string(t),
			Label:    t.Label(),
			Selected: t == selected,
		})
	}
	return options
}

// NewPageView builds the template data for a page snapshot
func NewPageView(state domain.PageState, csrfToken string, notifications []domain.Notification) PageView {
	mode := state.Form.Mode
	mc := copyByMode[mode]

	fields := make([]FieldView, 0, len(mode.FieldNames()))
	for _, name := range mode.FieldNames() {
		fc := fieldCopy[name]
		fv := FieldView{
			Name:        name,
			Label:       fc.label,
			Placeholder: fc.placeholder,
			InputType:   fc.inputType,
			Value:       fieldValue(state.Form, name),
			Error:       state.Errors[name],
		}
		if name == domain.FieldJobType {
			fv.Options = jobTypeOptions(state.Form.JobType)
		}
		fields = append(fields, fv)
	}

	return PageView{
		Title:         "Talent Sift - Job Description Platform",
		Heading:       mc.heading,
		Highlight:     mc.highlight,
		Tagline:       "Built with AI. Designed for Recruiters.",
		Action:        mc.action,
		ResultTitle:   mc.resultTitle,
		CSRFToken:     csrfToken,
		Loading:       state.Loading,
		Fields:        fields,
		Result:        RenderResult(state.Result),
		Notifications: notifications,
	}
}
