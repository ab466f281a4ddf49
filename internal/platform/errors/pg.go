package errors

import (
	stderrs "errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

const sqlStateUndefinedTable = "42P01"

// SQLSTATE codes that get a more specific code than ErrorCodeDB. Constraint
// and data errors stay server faults: request input is validated before it
// reaches the database, so a violation means the service sent a bad statement
var sqlStates = map[string]ErrorCode{
	"23505": ErrorCodeDuplicateKey,    // unique_violation
	"23503": ErrorCodeInvalidArgument, // foreign_key_violation
	"23502": ErrorCodeInvalidArgument, // not_null_violation
	"23514": ErrorCodeInvalidArgument, // check_violation
	"22001": ErrorCodeInvalidArgument, // string_data_right_truncation
	"22003": ErrorCodeInvalidArgument, // numeric_value_out_of_range
	"22021": ErrorCodeInvalidArgument, // character_not_in_repertoire
	"22P02": ErrorCodeInvalidArgument, // invalid_text_representation
	"25006": ErrorCodeUnavailable,     // read_only_sql_transaction
	"57P01": ErrorCodeUnavailable,     // admin_shutdown
	"57P03": ErrorCodeUnavailable,     // cannot_connect_now
}

// SQLState returns the SQLSTATE of the Postgres error in err's chain, or ""
func SQLState(err error) string {
	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// DBErrorCode maps a Postgres error to an ErrorCode. ok is false when err
// carries no *pgconn.PgError
func DBErrorCode(err error) (code ErrorCode, ok bool) {
	state := SQLState(err)
	if state == "" {
		return ErrorCodeUnknown, false
	}
	if c, found := sqlStates[state]; found {
		return c, true
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps a storage failure under msg. Postgres errors get the
// mapped code; anything else (closed pool, cancelled context, scan failure)
// is ErrorCodeDB. nil stays nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	code, ok := DBErrorCode(err)
	if !ok {
		code = ErrorCodeDB
	}
	return Wrap(err, code, msg)
}

// FromPostgresf is FromPostgres with a formatted message
func FromPostgresf(err error, format string, a ...any) error {
	if err == nil {
		return nil
	}
	return FromPostgres(err, fmt.Sprintf(format, a...))
}

// IsUndefinedTable reports whether err says a relation does not exist
func IsUndefinedTable(err error) bool { return SQLState(err) == sqlStateUndefinedTable }
