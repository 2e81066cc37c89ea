package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/DIX2580/salon-website/internal/model"
	"github.com/DIX2580/salon-website/pkg/client"
)

// BannerDuration is how long a success banner stays visible.
const BannerDuration = 5 * time.Second

const bookingFailedMessage = "Failed to book appointment. Please try again."

var (
	ErrStepIncomplete = errors.New("wizard: current step is incomplete")
	ErrSubmitting     = errors.New("wizard: a submission is already in flight")
	ErrNotOnDetails   = errors.New("wizard: submit is only possible from the details step")
	ErrUnknownService = errors.New("wizard: unknown service")
	ErrUnknownStylist = errors.New("wizard: unknown stylist")
	ErrUnknownSlot    = errors.New("wizard: unknown time slot")

	// ErrDetailsIncomplete is returned by Submit when a required field is
	// empty. Nothing is sent and the form state is left as it was.
	ErrDetailsIncomplete = errors.New("wizard: required details are missing")
)

type Step int

const (
	StepServiceSelection Step = iota + 1
	StepStylistSelection
	StepDateTimeSelection
	StepDetailsAndSubmit
)

const stepCount = int(StepDetailsAndSubmit)

func (s Step) String() string {
	switch s {
	case StepServiceSelection:
		return "ServiceSelection"
	case StepStylistSelection:
		return "StylistSelection"
	case StepDateTimeSelection:
		return "DateTimeSelection"
	case StepDetailsAndSubmit:
		return "DetailsAndSubmit"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

// State is the step plus whichever overlay currently covers it.
type State string

const (
	StateServiceSelection  State = "ServiceSelection"
	StateStylistSelection  State = "StylistSelection"
	StateDateTimeSelection State = "DateTimeSelection"
	StateDetailsAndSubmit  State = "DetailsAndSubmit"
	StateSubmitting        State = "Submitting"
	StateSuccess           State = "Success"
	StateError             State = "Error"
)

// Form holds catalog ids for service and stylist; the rest is free text.
type Form struct {
	ServiceID string
	StylistID string
	Date      string
	Time      string
	Name      string
	Email     string
	Phone     string
	Notes     string
}

type BookingSubmitter interface {
	CreateBooking(ctx context.Context, req *model.CreateBookingRequest) (*model.Booking, error)
}

var (
	_ BookingSubmitter = (*client.Client)(nil)
	_ ContactSubmitter = (*client.Client)(nil)
)

type Option func(*Wizard)

// WithClock replaces time.Now, for driving the success banner in tests.
func WithClock(now func() time.Time) Option {
	return func(w *Wizard) { w.now = now }
}

func WithCatalog(c *Catalog) Option {
	return func(w *Wizard) { w.catalog = c }
}

// Wizard is the booking intake state machine. It is safe for concurrent use.
type Wizard struct {
	mu           sync.Mutex
	catalog      *Catalog
	now          func() time.Time
	step         Step
	form         Form
	loading      bool
	errMessage   string
	successUntil time.Time
}

func New(opts ...Option) *Wizard {
	w := &Wizard{
		catalog: DefaultCatalog(),
		now:     time.Now,
		step:    StepServiceSelection,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Wizard) Catalog() *Catalog { return w.catalog }

func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch {
	case w.loading:
		return StateSubmitting
	case w.errMessage != "":
		return StateError
	case w.successVisible():
		return StateSuccess
	}
	return State(w.step.String())
}

func (w *Wizard) Form() Form {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.form
}

// Progress is the fraction of steps reached, 0.25 through 1.
func (w *Wizard) Progress() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return float64(w.step) / float64(stepCount)
}

func (w *Wizard) Loading() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.loading
}

// ErrorMessage is the message of the last failed submission, or "".
func (w *Wizard) ErrorMessage() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.errMessage
}

func (w *Wizard) SuccessVisible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.successVisible()
}

func (w *Wizard) successVisible() bool {
	return !w.successUntil.IsZero() && w.now().Before(w.successUntil)
}

func (w *Wizard) SelectService(id string) error {
	if _, ok := w.catalog.Service(id); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownService, id)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.form.ServiceID = id
	return nil
}

func (w *Wizard) SelectStylist(id string) error {
	if _, ok := w.catalog.Stylist(id); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStylist, id)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.form.StylistID = id
	return nil
}

func (w *Wizard) SelectDate(date string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.form.Date = date
}

func (w *Wizard) SelectTime(slot string) error {
	if !w.catalog.HasTimeSlot(slot) {
		return fmt.Errorf("%w: %q", ErrUnknownSlot, slot)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.form.Time = slot
	return nil
}

func (w *Wizard) SetDetails(name, email, phone, notes string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.form.Name = name
	w.form.Email = email
	w.form.Phone = phone
	w.form.Notes = notes
}

// CanAdvance reports whether the current step's fields are present.
func (w *Wizard) CanAdvance() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stepComplete()
}

func (w *Wizard) stepComplete() bool {
	switch w.step {
	case StepServiceSelection:
		return w.form.ServiceID != ""
	case StepStylistSelection:
		return w.form.StylistID != ""
	case StepDateTimeSelection:
		return w.form.Date != "" && w.form.Time != ""
	default:
		return true
	}
}

// detailsComplete checks every field the booking needs. Notes are optional.
func (w *Wizard) detailsComplete() bool {
	f := w.form
	return f.ServiceID != "" && f.StylistID != "" && f.Date != "" && f.Time != "" &&
		f.Name != "" && f.Email != "" && f.Phone != ""
}

// Next moves one step forward. It is a no-op on the last step and returns
// ErrStepIncomplete, leaving the step unchanged, when the gate fails.
func (w *Wizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step >= StepDetailsAndSubmit {
		return nil
	}
	if !w.stepComplete() {
		return ErrStepIncomplete
	}
	w.step++
	return nil
}

// Back moves one step backward without touching entered data.
func (w *Wizard) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step > StepServiceSelection {
		w.step--
	}
}

// Submit sends the booking through s exactly once. Empty name, email or
// phone fail with ErrDetailsIncomplete before anything is sent. On success the form is
// cleared, the wizard returns to the first step and the success banner
// shows for BannerDuration. On failure the form and step are kept and the
// server message, or a generic one, is exposed by ErrorMessage.
func (w *Wizard) Submit(ctx context.Context, s BookingSubmitter) error {
	w.mu.Lock()
	if w.loading {
		w.mu.Unlock()
		return ErrSubmitting
	}
	if w.step != StepDetailsAndSubmit {
		w.mu.Unlock()
		return ErrNotOnDetails
	}
	if !w.detailsComplete() {
		w.mu.Unlock()
		return ErrDetailsIncomplete
	}
	w.loading = true
	w.errMessage = ""
	req := w.payload()
	w.mu.Unlock()

	_, err := s.CreateBooking(ctx, req)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.loading = false

	if err != nil {
		w.errMessage = failureMessage(err, bookingFailedMessage)
		return err
	}

	w.form = Form{}
	w.step = StepServiceSelection
	w.successUntil = w.now().Add(BannerDuration)
	return nil
}

// payload translates catalog ids into the display names the API stores.
func (w *Wizard) payload() *model.CreateBookingRequest {
	req := &model.CreateBookingRequest{
		Date:  w.form.Date,
		Time:  w.form.Time,
		Name:  w.form.Name,
		Email: w.form.Email,
		Phone: w.form.Phone,
		Notes: w.form.Notes,
	}
	if svc, ok := w.catalog.Service(w.form.ServiceID); ok {
		req.Service = svc.Name
	}
	if st, ok := w.catalog.Stylist(w.form.StylistID); ok {
		req.Stylist = st.Name
	}
	return req
}

func failureMessage(err error, fallback string) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
