package db

// SeedReservations returns the demo reservations every store starts with.
func SeedReservations() []Reservation {
	return []Reservation{
		{ID: 1, Customer: "John Smith", Activity: "Kayak Tour", Date: "2024-01-15", Time: "10:00 AM", Status: StatusConfirmed, Guide: "Harry Weaver"},
		{ID: 2, Customer: "Sarah Johnson", Activity: "Jet Ski Rental", Date: "2024-01-16", Time: "2:00 PM", Status: StatusPending, Guide: "Shawn Weaver"},
		{ID: 3, Customer: "Mike Davis", Activity: "Fishing Charter", Date: "2024-01-17", Time: "6:00 AM", Status: StatusConfirmed, Guide: "Harry Weaver"},
	}
}

// SeedCustomers returns the demo customers every store starts with.
func SeedCustomers() []Customer {
	return []Customer{
		{ID: 1, Name: "John Smith", Email: "john@email.com", Phone: "555-0123", TotalBookings: 5, LastVisit: "2024-01-10"},
		{ID: 2, Name: "Sarah Johnson", Email: "sarah@email.com", Phone: "555-0456", TotalBookings: 2, LastVisit: "2024-01-12"},
		{ID: 3, Name: "Mike Davis", Email: "mike@email.com", Phone: "555-0789", TotalBookings: 8, LastVisit: "2024-01-14"},
	}
}
