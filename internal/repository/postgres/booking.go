package postgres

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/DIX2580/salon-website/internal/model"
)

const bookingColumns = `id, service, stylist, date, time, name, email, phone, notes, created_at, updated_at`

func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	query := `
		INSERT INTO bookings (
			id, service, stylist, date, time,
			name, email, phone, notes,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	id := uuid.New()
	ts := now()

	_, err := r.db.ExecContext(ctx, query,
		id,
		booking.Service,
		booking.Stylist,
		booking.Date,
		booking.Time,
		booking.Name,
		booking.Email,
		booking.Phone,
		booking.Notes,
		ts,
		ts,
	)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	booking.ID = id.String()
	booking.CreatedAt = ts
	booking.UpdatedAt = ts
	return nil
}

func (r *bookingRepository) List(ctx context.Context) ([]*model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC, id DESC`

	bookings := []*model.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (r *bookingRepository) Get(ctx context.Context, id string) (*model.Booking, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var booking model.Booking
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	if err := r.getOne(ctx, &booking, query, uid); err != nil {
		return nil, err
	}
	return &booking, nil
}

// Update sets only the present patch fields and returns the stored row.
func (r *bookingRepository) Update(ctx context.Context, id string, patch *model.BookingPatch) (*model.Booking, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	fields := patch.Fields()
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sets := make([]string, 0, len(keys)+1)
	args := make([]interface{}, 0, len(keys)+2)
	for i, k := range keys {
		sets = append(sets, fmt.Sprintf("%s = $%d", k, i+1))
		args = append(args, fields[k])
	}
	sets = append(sets, fmt.Sprintf("updated_at = $%d", len(keys)+1))
	args = append(args, now(), uid)

	query := fmt.Sprintf(
		`UPDATE bookings SET %s WHERE id = $%d RETURNING `+bookingColumns,
		strings.Join(sets, ", "), len(keys)+2,
	)

	var booking model.Booking
	if err := r.getOne(ctx, &booking, query, args...); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Delete(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "bookings", id)
}
