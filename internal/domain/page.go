package domain

import "errors"

// ErrSubmissionInProgress is returned when a page already has a submission in flight
var ErrSubmissionInProgress = errors.New("a submission is already in progress")

// NotificationVariant mirrors the toast styles of the page
type NotificationVariant string

const (
	NotificationDefault     NotificationVariant = "default"
	NotificationDestructive NotificationVariant = "destructive"
)

// Notification is a user-facing toast shown after a submit attempt
type Notification struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Variant     NotificationVariant `json:"variant"`
}

// Notification titles and fixed descriptions
const (
	TitleSuccess            = "Success!"
	TitleUploadFailed       = "Upload Failed"
	TitleMissingInformation = "Missing Information"

	DescSuccess            = "Job description created successfully."
	DescMissingInformation = "Please fill in all required fields."
	DescSomethingWentWrong = "Something went wrong."
	DescSubmissionInFlight = "A submission is already in progress."
)

// Notifier receives the outcome of each submit attempt
type Notifier interface {
	Notify(n Notification)
}

// PageState is a snapshot of one page: form values, inline errors and the last result
type PageState struct {
	Form    JobRequestForm
	Errors  ValidationErrors
	Result  WorkflowResult
	Loading bool
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) {
	f(n)
}
