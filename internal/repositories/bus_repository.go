package repositories

import (
	"database/sql"
	"errors"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
)

// BusRepository persists and queries bus records.
type BusRepository struct {
	DB *sql.DB
}

// Insert stores a new bus and returns it with the assigned id. A name
// collision surfaces as DuplicateNameError; nothing is written in that case.
func (r BusRepository) Insert(bus models.Bus) (models.Bus, error) {
	res, err := r.DB.Exec(
		`INSERT INTO buses (bus_name, from_city, to_city, total_seats) VALUES (?, ?, ?, ?)`,
		bus.Name, bus.Origin, bus.Destination, bus.Capacity,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return models.Bus{}, domain.DuplicateNameError{Name: bus.Name, Err: err}
		}
		return models.Bus{}, domain.InternalError{Msg: "insert bus failed", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Bus{}, domain.InternalError{Msg: "read bus id failed", Err: err}
	}
	bus.ID = id
	return bus, nil
}

// List returns every bus in insertion order.
func (r BusRepository) List() ([]models.Bus, error) {
	rows, err := r.DB.Query(
		`SELECT id, bus_name, from_city, to_city, total_seats FROM buses ORDER BY id ASC`)
	if err != nil {
		return nil, domain.InternalError{Msg: "list buses failed", Err: err}
	}
	defer rows.Close()

	out := []models.Bus{}
	for rows.Next() {
		var b models.Bus
		if err := rows.Scan(&b.ID, &b.Name, &b.Origin, &b.Destination, &b.Capacity); err != nil {
			return nil, domain.InternalError{Msg: "scan bus failed", Err: err}
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "list buses failed", Err: err}
	}
	return out, nil
}

// ListNames returns all bus names sorted ascending, for choice lists.
func (r BusRepository) ListNames() ([]string, error) {
	rows, err := r.DB.Query(`SELECT bus_name FROM buses ORDER BY bus_name ASC`)
	if err != nil {
		return nil, domain.InternalError{Msg: "list bus names failed", Err: err}
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, domain.InternalError{Msg: "scan bus name failed", Err: err}
		}
		out = append(out, name)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "list bus names failed", Err: err}
	}
	return out, nil
}

// FindByName resolves a bus by exact name. The bus_name column carries a
// binary collation, so the match is case-sensitive.
func (r BusRepository) FindByName(name string) (models.Bus, error) {
	var b models.Bus
	err := r.DB.QueryRow(
		`SELECT id, bus_name, from_city, to_city, total_seats FROM buses WHERE bus_name = ? LIMIT 1`,
		name,
	).Scan(&b.ID, &b.Name, &b.Origin, &b.Destination, &b.Capacity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Bus{}, domain.NotFoundError{Resource: "bus", Err: err}
		}
		return models.Bus{}, domain.InternalError{Msg: "find bus failed", Err: err}
	}
	return b, nil
}
