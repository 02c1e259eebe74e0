package db

import (
	"context"
	"database/sql"
	"errors"
)

const (
	insertReservation = `INSERT INTO reservations (id,customer,activity,date,time,status,guide,notes)
		VALUES (:id,:customer,:activity,:date,:time,:status,:guide,:notes)`
	updateReservation = `UPDATE reservations SET customer=:customer,activity=:activity,date=:date,time=:time,
		status=:status,guide=:guide,notes=:notes WHERE id=:id`
	insertCustomer = `INSERT INTO customers (id,name,email,phone,address,total_bookings,last_visit)
		VALUES (:id,:name,:email,:phone,:address,:total_bookings,:last_visit)`
	updateCustomer = `UPDATE customers SET name=:name,email=:email,phone=:phone,address=:address,
		total_bookings=:total_bookings,last_visit=:last_visit WHERE id=:id`
)

// SQLReservations is the sqlite-backed ReservationStore. New ids are always
// the current max plus one, so ordering by id is insertion order.
type SQLReservations struct{ db *DB }

func (s *SQLReservations) List(ctx context.Context) ([]Reservation, error) {
	out := []Reservation{}
	if err := s.db.SelectContext(ctx, &out, "SELECT * FROM reservations ORDER BY id ASC"); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLReservations) Create(ctx context.Context, in NewReservation) (Reservation, error) {
	if err := in.Validate(); err != nil {
		return Reservation{}, err
	}
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return Reservation{}, err
	}
	defer tx.Rollback()

	var id int
	if err := tx.GetContext(ctx, &id, "SELECT COALESCE(MAX(id),0)+1 FROM reservations"); err != nil {
		return Reservation{}, err
	}
	r := in.build(id)
	if _, err := tx.NamedExecContext(ctx, insertReservation, r); err != nil {
		return Reservation{}, err
	}
	return r, tx.Commit()
}

func (s *SQLReservations) Update(ctx context.Context, id int, p ReservationPatch) (Reservation, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return Reservation{}, err
	}
	defer tx.Rollback()

	var r Reservation
	if err := tx.GetContext(ctx, &r, "SELECT * FROM reservations WHERE id=?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Reservation{}, notFound("reservation", id)
		}
		return Reservation{}, err
	}
	p.Apply(&r)
	if _, err := tx.NamedExecContext(ctx, updateReservation, r); err != nil {
		return Reservation{}, err
	}
	return r, tx.Commit()
}

func (s *SQLReservations) Delete(ctx context.Context, id int) (Reservation, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return Reservation{}, err
	}
	defer tx.Rollback()

	var r Reservation
	if err := tx.GetContext(ctx, &r, "SELECT * FROM reservations WHERE id=?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Reservation{}, notFound("reservation", id)
		}
		return Reservation{}, err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM reservations WHERE id=?", id); err != nil {
		return Reservation{}, err
	}
	return r, tx.Commit()
}

// SQLCustomers is the sqlite-backed CustomerStore.
type SQLCustomers struct {
	db    *DB
	clock Clock
}

func (s *SQLCustomers) List(ctx context.Context) ([]Customer, error) {
	out := []Customer{}
	if err := s.db.SelectContext(ctx, &out, "SELECT * FROM customers ORDER BY id ASC"); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLCustomers) Create(ctx context.Context, in NewCustomer) (Customer, error) {
	if err := in.Validate(); err != nil {
		return Customer{}, err
	}
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return Customer{}, err
	}
	defer tx.Rollback()

	var id int
	if err := tx.GetContext(ctx, &id, "SELECT COALESCE(MAX(id),0)+1 FROM customers"); err != nil {
		return Customer{}, err
	}
	c := in.build(id, today(s.clock))
	if _, err := tx.NamedExecContext(ctx, insertCustomer, c); err != nil {
		return Customer{}, err
	}
	return c, tx.Commit()
}

func (s *SQLCustomers) Update(ctx context.Context, id int, p CustomerPatch) (Customer, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return Customer{}, err
	}
	defer tx.Rollback()

	var c Customer
	if err := tx.GetContext(ctx, &c, "SELECT * FROM customers WHERE id=?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Customer{}, notFound("customer", id)
		}
		return Customer{}, err
	}
	p.Apply(&c)
	if _, err := tx.NamedExecContext(ctx, updateCustomer, c); err != nil {
		return Customer{}, err
	}
	return c, tx.Commit()
}
