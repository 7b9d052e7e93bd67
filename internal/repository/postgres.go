package repository

import (
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"

	"content-platform/internal/domain"
)

// psql builds statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// uniqueViolation returns the violated constraint name if err is a Postgres
// unique violation.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// rowScanner is satisfied by pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func principalTable(kind domain.PrincipalKind) (string, error) {
	switch kind {
	case domain.PrincipalLocal:
		return "local_principals", nil
	case domain.PrincipalExternal:
		return "external_principals", nil
	}
	return "", domain.Validationf("invalid principal kind %q", kind)
}
