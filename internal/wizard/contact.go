package wizard

import (
	"context"
	"sync"
	"time"

	"github.com/DIX2580/salon-website/internal/model"
)

const contactFailedMessage = "Failed to send your message. Please try again later."

type ContactSubmitter interface {
	CreateContact(ctx context.Context, req *model.CreateContactRequest) (*model.Contact, error)
}

type ContactFields struct {
	Name    string
	Email   string
	Subject string
	Message string
}

func (c ContactFields) complete() bool {
	return c.Name != "" && c.Email != "" && c.Subject != "" && c.Message != ""
}

// ContactForm is the single-step contact form. Failures always show the
// same generic message.
type ContactForm struct {
	mu           sync.Mutex
	now          func() time.Time
	fields       ContactFields
	submitting   bool
	errMessage   string
	successUntil time.Time
}

func NewContactForm(now func() time.Time) *ContactForm {
	if now == nil {
		now = time.Now
	}
	return &ContactForm{now: now}
}

func (f *ContactForm) Set(fields ContactFields) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = fields
}

func (f *ContactForm) Fields() ContactFields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

func (f *ContactForm) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

func (f *ContactForm) ErrorMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMessage
}

func (f *ContactForm) SuccessVisible() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.successUntil.IsZero() && f.now().Before(f.successUntil)
}

func (f *ContactForm) Submit(ctx context.Context, s ContactSubmitter) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitting
	}
	if !f.fields.complete() {
		f.mu.Unlock()
		return ErrDetailsIncomplete
	}
	f.submitting = true
	f.errMessage = ""
	req := &model.CreateContactRequest{
		Name:    f.fields.Name,
		Email:   f.fields.Email,
		Subject: f.fields.Subject,
		Message: f.fields.Message,
	}
	f.mu.Unlock()

	_, err := s.CreateContact(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false

	if err != nil {
		f.errMessage = contactFailedMessage
		return err
	}

	f.fields = ContactFields{}
	f.successUntil = f.now().Add(BannerDuration)
	return nil
}
