package db

import "database/sql"

// The unique key on (bus_id, travel_date, seat_number) is the double-booking
// guard: check-and-insert rides on the index, so no application-level lock
// is needed. travel_date is stored as an opaque string, not a DATE.
// bus_name uses a binary collation so uniqueness and lookup are
// case-sensitive exact matches.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS buses (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		bus_name VARCHAR(190) COLLATE utf8mb4_bin NOT NULL,
		from_city VARCHAR(190) NOT NULL,
		to_city VARCHAR(190) NOT NULL,
		total_seats INT NOT NULL,
		UNIQUE KEY uniq_bus_name (bus_name)
	)`,
	`CREATE TABLE IF NOT EXISTS tickets (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		passenger_name VARCHAR(190) NOT NULL,
		bus_id BIGINT NOT NULL,
		travel_date VARCHAR(32) NOT NULL,
		seat_number INT NOT NULL,
		UNIQUE KEY uniq_seat (bus_id, travel_date, seat_number),
		CONSTRAINT fk_tickets_bus FOREIGN KEY (bus_id) REFERENCES buses(id)
	)`,
}

// EnsureSchema creates the two tables when missing. Idempotent; run once at
// startup before the repositories are used.
func EnsureSchema(conn *sql.DB) error {
	for _, stmt := range schema {
		if _, err := conn.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
