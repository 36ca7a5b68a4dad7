package usecase

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"

	"talent-sift/internal/domain"
	"talent-sift/pkg/apperror"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Page is the state behind one rendered job form: the form values, the inline
// errors of the last submit, the last result, and the loading flag that allows
// one submission at a time.
type Page struct {
	sessionID string
	uc        domain.JobFormUsecase
	loading   atomic.Bool

	mu     sync.RWMutex
	form   domain.JobRequestForm
	errors domain.ValidationErrors
	result domain.WorkflowResult
}

func newPage(sessionID string, form domain.JobRequestForm, uc domain.JobFormUsecase) *Page {
	return &Page{
		sessionID: sessionID,
		uc:        uc,
		form:      form,
		errors:    domain.ValidationErrors{},
	}
}

// Snapshot returns a copy of the page state for rendering
func (p *Page) Snapshot() domain.PageState {
	p.mu.RLock()
	defer p.mu.RUnlock()

	errs := make(domain.ValidationErrors, len(p.errors))
	for k, v := range p.errors {
		errs[k] = v
	}
	return domain.PageState{
		Form:    p.form,
		Errors:  errs,
		Result:  p.result,
		Loading: p.loading.Load(),
	}
}

// Update replaces a single form field. Fields are locked while a submission is in flight.
func (p *Page) Update(field, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.loading.Load() {
		return apperror.New(http.StatusConflict, domain.DescSubmissionInFlight, domain.ErrSubmissionInProgress)
	}
	form, err := UpdateField(p.form, field, value)
	if err != nil {
		return apperror.BadRequest(err.Error())
	}
	p.form = form
	return nil
}

// Reset starts the page over with form, as on a fresh load: inline errors
// and the last result are cleared. A page with a submission in flight is
// left untouched and Reset reports false.
func (p *Page) Reset(form domain.JobRequestForm) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.loading.Load() {
		return false
	}
	p.form = form
	p.errors = domain.ValidationErrors{}
	p.result = domain.WorkflowResult{}
	return true
}

// Submit validates and sends the current form. The notifier is told the
// outcome; on failure the previous result and the form input are kept.
func (p *Page) Submit(ctx context.Context, notifier domain.Notifier) error {
	return p.SubmitValues(ctx, nil, notifier)
}

// SubmitValues applies the posted field values and submits the form. The
// loading flag is taken before any value is applied, so a submission rejected
// because another one is in flight leaves the form as it was.
func (p *Page) SubmitValues(ctx context.Context, values map[string]string, notifier domain.Notifier) error {
	if !p.loading.CompareAndSwap(false, true) {
		notifier.Notify(domain.Notification{
			Title:       domain.TitleUploadFailed,
			Description: domain.DescSubmissionInFlight,
			Variant:     domain.NotificationDestructive,
		})
		return apperror.New(http.StatusConflict, domain.DescSubmissionInFlight, domain.ErrSubmissionInProgress)
	}
	defer p.loading.Store(false)

	p.mu.Lock()
	form := p.form
	for _, field := range form.Mode.FieldNames() {
		value, ok := values[field]
		if !ok {
			continue
		}
		updated, err := UpdateField(form, field, value)
		if err != nil {
			p.mu.Unlock()
			return apperror.BadRequest(err.Error())
		}
		form = updated
	}
	p.form = form
	errs := p.uc.Validate(&form)
	p.errors = errs
	p.mu.Unlock()

	if len(errs) > 0 {
		notifier.Notify(domain.Notification{
			Title:       domain.TitleMissingInformation,
			Description: domain.DescMissingInformation,
			Variant:     domain.NotificationDestructive,
		})
		return apperror.Validation(errs)
	}

	result, err := p.uc.Generate(ctx, p.sessionID, &form)
	if err != nil {
		desc := err.Error()
		if desc == "" {
			desc = domain.DescSomethingWentWrong
		}
		notifier.Notify(domain.Notification{
			Title:       domain.TitleUploadFailed,
			Description: desc,
			Variant:     domain.NotificationDestructive,
		})
		return err
	}

	p.mu.Lock()
	p.result = result
	p.mu.Unlock()

	notifier.Notify(domain.Notification{
		Title:       domain.TitleSuccess,
		Description: domain.DescSuccess,
		Variant:     domain.NotificationDefault,
	})
	return nil
}

// PageRegistry keeps the most recently used pages, one per session and mode
type PageRegistry struct {
	mu    sync.Mutex
	pages *lru.Cache[string, *Page]
	uc    domain.JobFormUsecase
}

// NewPageRegistry creates a registry holding at most size pages
func NewPageRegistry(size int, uc domain.JobFormUsecase) (*PageRegistry, error) {
	cache, err := lru.New[string, *Page](size)
	if err != nil {
		return nil, err
	}
	return &PageRegistry{pages: cache, uc: uc}, nil
}

// Open returns the page for the session and mode, creating it on first use.
// A new job-description page is pre-filled from query.
func (r *PageRegistry) Open(sessionID string, mode domain.FormMode, query url.Values) *Page {
	key := sessionID + "|" + string(mode)

	r.mu.Lock()
	defer r.mu.Unlock()

	if page, ok := r.pages.Get(key); ok {
		return page
	}

	page := newPage(sessionID, InitialForm(mode, query), r.uc)
	r.pages.Add(key, page)
	return page
}

// Mount opens the page for a fresh load: the form is rebuilt from query and
// the previous errors and result are dropped. While a submission is in
// flight the page is returned unchanged.
func (r *PageRegistry) Mount(sessionID string, mode domain.FormMode, query url.Values) *Page {
	page := r.Open(sessionID, mode, query)
	page.Reset(InitialForm(mode, query))
	return page
}

// InitialForm is the form a page starts with. Only job-description pages
// read link parameters.
func InitialForm(mode domain.FormMode, query url.Values) domain.JobRequestForm {
	if mode == domain.ModeJobDescription {
		return PrefillFromQuery(query)
	}
	return domain.JobRequestForm{Mode: mode}
}

// Len reports how many pages are held
func (r *PageRegistry) Len() int {
	return r.pages.Len()
}
