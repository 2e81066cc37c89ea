package model

// Contact is one inbound inquiry from the contact form.
type Contact struct {
	Base
	Name    string `json:"name" db:"name"`
	Email   string `json:"email" db:"email"`
	Subject string `json:"subject" db:"subject"`
	Message string `json:"message" db:"message"`
}

type CreateContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

func (r *CreateContactRequest) ToContact() *Contact {
	return &Contact{
		Name:    r.Name,
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
	}
}
