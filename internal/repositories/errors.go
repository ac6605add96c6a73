package repositories

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

const mysqlDuplicateEntry = 1062

// isDuplicateKey reports whether err is a MySQL unique-key rejection. The
// unique indexes on buses.bus_name and tickets(bus_id, travel_date,
// seat_number) are the only sources of 1062 in this schema.
func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlDuplicateEntry
}
