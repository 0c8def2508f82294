// Package repository holds the MySQL-backed stores. Stores return the
// sentinel errors below so that the service layer can tell the failure
// scenarios apart without inspecting driver errors.
package repository

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

var (
	ErrShowingNotFound = errors.New("showing not found")
	ErrTheaterNotFound = errors.New("theater not found")
	ErrMovieNotFound   = errors.New("movie not found")
	ErrSystemNotFound  = errors.New("cinema system not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrTokenNotFound   = errors.New("refresh token not found")

	// ErrSeatNotFound is returned when a requested seat does not belong to
	// the showing's theater.
	ErrSeatNotFound = errors.New("seat not found")
	// ErrSeatTaken is returned when at least one requested seat already has
	// a booking for the showing. Nothing is written in that case.
	ErrSeatTaken = errors.New("seat already booked")
	// ErrTicketCodeTaken is returned when a generated ticket code collides
	// with an existing one. Nothing is written; retry with fresh codes.
	ErrTicketCodeTaken = errors.New("ticket code already in use")

	ErrUsernameExists = errors.New("username already exists")
	ErrShowingExists  = errors.New("showing already exists for this time")
)

// MySQL server error numbers the stores react to.
const (
	mysqlDuplicateEntry = 1062
)

// Unique keys of the bookings table, as named in schema.sql.
const keyBookingTicketCode = "uq_booking_ticket_code"

func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlDuplicateEntry
}

// isDuplicateOn reports a duplicate entry on the named unique key. MySQL
// names the key in the message, qualified by the table since 8.0:
// "Duplicate entry 'x' for key 'bookings.uq_booking_ticket_code'".
func isDuplicateOn(err error, key string) bool {
	var me *mysql.MySQLError
	if !errors.As(err, &me) || me.Number != mysqlDuplicateEntry {
		return false
	}
	return strings.HasSuffix(me.Message, "'"+key+"'") || strings.HasSuffix(me.Message, "."+key+"'")
}
