package db

// Domain models shared by every backend. JSON names follow the public API,
// db tags follow the SQLite schema in sqlite.go.

type Reservation struct {
	ID       int    `db:"id" json:"id"`
	Customer string `db:"customer" json:"customer"`
	Activity string `db:"activity" json:"activity"`
	Date     string `db:"date" json:"date"`
	Time     string `db:"time" json:"time"`
	Status   string `db:"status" json:"status"`
	Guide    string `db:"guide" json:"guide"`
	Notes    string `db:"notes" json:"notes"`
}

type Customer struct {
	ID            int    `db:"id" json:"id"`
	Name          string `db:"name" json:"name"`
	Email         string `db:"email" json:"email"`
	Phone         string `db:"phone" json:"phone"`
	Address       string `db:"address" json:"address"`
	TotalBookings int    `db:"total_bookings" json:"totalBookings"`
	LastVisit     string `db:"last_visit" json:"lastVisit"`
}

// StatusPending is assigned to every new reservation.
const StatusPending = "pending"

// StatusConfirmed marks a reservation counted by occupancy analytics.
const StatusConfirmed = "confirmed"

// NewReservation is the create payload. Any client-supplied id or status is
// not part of it and therefore ignored.
type NewReservation struct {
	Customer string `json:"customer"`
	Activity string `json:"activity"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Guide    string `json:"guide"`
	Notes    string `json:"notes"`
}

// Validate checks that all required fields are present.
func (in NewReservation) Validate() error {
	if in.Customer == "" || in.Activity == "" || in.Date == "" || in.Time == "" || in.Guide == "" {
		return &ValidationError{Message: "Missing required reservation fields."}
	}
	return nil
}

func (in NewReservation) build(id int) Reservation {
	return Reservation{
		ID:       id,
		Customer: in.Customer,
		Activity: in.Activity,
		Date:     in.Date,
		Time:     in.Time,
		Status:   StatusPending,
		Guide:    in.Guide,
		Notes:    in.Notes,
	}
}

// ReservationPatch holds the fields an update may overwrite. A nil field is
// left untouched; the id is not patchable.
type ReservationPatch struct {
	Customer *string `json:"customer"`
	Activity *string `json:"activity"`
	Date     *string `json:"date"`
	Time     *string `json:"time"`
	Status   *string `json:"status"`
	Guide    *string `json:"guide"`
	Notes    *string `json:"notes"`
}

// Apply copies every set field of p onto r.
func (p ReservationPatch) Apply(r *Reservation) {
	setString(&r.Customer, p.Customer)
	setString(&r.Activity, p.Activity)
	setString(&r.Date, p.Date)
	setString(&r.Time, p.Time)
	setString(&r.Status, p.Status)
	setString(&r.Guide, p.Guide)
	setString(&r.Notes, p.Notes)
}

type NewCustomer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Validate checks that all required fields are present.
func (in NewCustomer) Validate() error {
	if in.Name == "" || in.Email == "" || in.Phone == "" {
		return &ValidationError{Message: "Missing required customer fields."}
	}
	return nil
}

func (in NewCustomer) build(id int, today string) Customer {
	return Customer{
		ID:        id,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		LastVisit: today,
	}
}

type CustomerPatch struct {
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	TotalBookings *int    `json:"totalBookings"`
	LastVisit     *string `json:"lastVisit"`
}

// Apply copies every set field of p onto c.
func (p CustomerPatch) Apply(c *Customer) {
	setString(&c.Name, p.Name)
	setString(&c.Email, p.Email)
	setString(&c.Phone, p.Phone)
	setString(&c.Address, p.Address)
	setString(&c.LastVisit, p.LastVisit)
	if p.TotalBookings != nil {
		c.TotalBookings = *p.TotalBookings
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
