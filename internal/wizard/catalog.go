package wizard

type Service struct {
	ID       string
	Name     string
	Duration string
	Price    string
}

type Stylist struct {
	ID          string
	Name        string
	Specialties []string
}

// Catalog lists what the intake wizard offers. Bookings store the display
// names, never the ids.
type Catalog struct {
	Services  []Service
	Stylists  []Stylist
	TimeSlots []string
}

func DefaultCatalog() *Catalog {
	return &Catalog{
		Services: []Service{
			{ID: "haircut", Name: "Haircut & Styling", Duration: "60 min", Price: "$65+"},
			{ID: "color", Name: "Hair Coloring", Duration: "120 min", Price: "$100+"},
			{ID: "highlights", Name: "Highlights", Duration: "150 min", Price: "$120+"},
			{ID: "facial", Name: "Facial Treatment", Duration: "60 min", Price: "$85+"},
			{ID: "manicure", Name: "Manicure", Duration: "45 min", Price: "$40+"},
			{ID: "pedicure", Name: "Pedicure", Duration: "60 min", Price: "$55+"},
		},
		Stylists: []Stylist{
			{ID: "sophia", Name: "Sophia Reynolds", Specialties: []string{"Haircut", "Styling"}},
			{ID: "michael", Name: "Michael Chen", Specialties: []string{"Color", "Highlights"}},
			{ID: "olivia", Name: "Olivia Garcia", Specialties: []string{"Facial", "Skincare"}},
			{ID: "james", Name: "James Wilson", Specialties: []string{"Manicure", "Pedicure"}},
		},
		TimeSlots: []string{
			"9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
			"1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM",
			"5:00 PM", "6:00 PM", "7:00 PM",
		},
	}
}

func (c *Catalog) Service(id string) (Service, bool) {
	for _, s := range c.Services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

func (c *Catalog) Stylist(id string) (Stylist, bool) {
	for _, s := range c.Stylists {
		if s.ID == id {
			return s, true
		}
	}
	return Stylist{}, false
}

func (c *Catalog) HasTimeSlot(slot string) bool {
	for _, s := range c.TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}
