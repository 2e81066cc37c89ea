package model

// Notification describes one alert attempt for a booking.
type Notification struct {
	EventID    string
	BookingID  string
	Channel    string
	Recipient  string
	Content    string
	ProviderID string
}
