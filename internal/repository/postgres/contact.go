package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/DIX2580/salon-website/internal/model"
)

const contactColumns = `id, name, email, subject, message, created_at, updated_at`

func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) error {
	query := `
		INSERT INTO contacts (
			id, name, email, subject, message, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	id := uuid.New()
	ts := now()

	_, err := r.db.ExecContext(ctx, query,
		id,
		contact.Name,
		contact.Email,
		contact.Subject,
		contact.Message,
		ts,
		ts,
	)
	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}

	contact.ID = id.String()
	contact.CreatedAt = ts
	contact.UpdatedAt = ts
	return nil
}

func (r *contactRepository) List(ctx context.Context) ([]*model.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts ORDER BY created_at DESC, id DESC`

	contacts := []*model.Contact{}
	if err := r.db.SelectContext(ctx, &contacts, query); err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return contacts, nil
}

func (r *contactRepository) Get(ctx context.Context, id string) (*model.Contact, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var contact model.Contact
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`
	if err := r.getOne(ctx, &contact, query, uid); err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) Delete(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "contacts", id)
}
