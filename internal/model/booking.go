package model

// Booking is one appointment request. Two bookings may share the same
// stylist, date and time; nothing checks for overlaps.
type Booking struct {
	Base
	Service string `json:"service" db:"service"`
	Stylist string `json:"stylist" db:"stylist"`
	Date    string `json:"date" db:"date"`
	Time    string `json:"time" db:"time"`
	Name    string `json:"name" db:"name"`
	Email   string `json:"email" db:"email"`
	Phone   string `json:"phone" db:"phone"`
	Notes   string `json:"notes" db:"notes"`
}

type CreateBookingRequest struct {
	Service string `json:"service" validate:"required"`
	Stylist string `json:"stylist" validate:"required"`
	Date    string `json:"date" validate:"required"`
	Time    string `json:"time" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Notes   string `json:"notes"`
}

func (r *CreateBookingRequest) ToBooking() *Booking {
	return &Booking{
		Service: r.Service,
		Stylist: r.Stylist,
		Date:    r.Date,
		Time:    r.Time,
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Notes:   r.Notes,
	}
}

// BookingPatch carries the fields of an update. Nil fields are left as stored.
type BookingPatch struct {
	Service *string `json:"service" validate:"omitnil,min=1"`
	Stylist *string `json:"stylist" validate:"omitnil,min=1"`
	Date    *string `json:"date" validate:"omitnil,min=1"`
	Time    *string `json:"time" validate:"omitnil,min=1"`
	Name    *string `json:"name" validate:"omitnil,min=1"`
	Email   *string `json:"email" validate:"omitnil,min=1"`
	Phone   *string `json:"phone" validate:"omitnil,min=1"`
	Notes   *string `json:"notes"`
}

// Fields returns the present fields keyed by their stored name.
func (p *BookingPatch) Fields() map[string]string {
	fields := make(map[string]string)
	set := func(key string, v *string) {
		if v != nil {
			fields[key] = *v
		}
	}
	set("service", p.Service)
	set("stylist", p.Stylist)
	set("date", p.Date)
	set("time", p.Time)
	set("name", p.Name)
	set("email", p.Email)
	set("phone", p.Phone)
	set("notes", p.Notes)
	return fields
}

// Apply copies the present fields onto b.
func (p *BookingPatch) Apply(b *Booking) {
	apply := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	apply(&b.Service, p.Service)
	apply(&b.Stylist, p.Stylist)
	apply(&b.Date, p.Date)
	apply(&b.Time, p.Time)
	apply(&b.Name, p.Name)
	apply(&b.Email, p.Email)
	apply(&b.Phone, p.Phone)
	apply(&b.Notes, p.Notes)
}
