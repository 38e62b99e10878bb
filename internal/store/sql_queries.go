package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/fuel-station-dashboard/models"
)

const (
	createCredential = `INSERT INTO credentials (id, email, password_hash, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, email, password_hash, created_at, updated_at;`

	findCredentialByEmail = `SELECT id, email, password_hash, created_at, updated_at
    FROM credentials
    WHERE email = $1;`

	findCredentialByID = `SELECT id, email, password_hash, created_at, updated_at
    FROM credentials
    WHERE id = $1;`
)

var credentialColumns = []string{"id", "email", "password_hash", "created_at", "updated_at"}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpdatePasswordHashQuery builds the UPDATE that replaces a password hash
// and returns the stored row.
func buildUpdatePasswordHashQuery(id, passwordHash string, updatedAt time.Time) (string, []any, error) {
	return psql.
		Update(models.Credential{}.TableName()).
		Set("password_hash", passwordHash).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(credentialColumns, ", ")).
		ToSql()
}

// buildListCredentialsQuery builds the listing SELECT, newest first.
func buildListCredentialsQuery(filter models.CredentialFilter) (string, []any, error) {
	query := psql.
		Select(credentialColumns...).
		From(models.Credential{}.TableName()).
		OrderBy("created_at DESC", "id DESC")

	if filter.Email != "" {
		query = query.Where(sq.ILike{"email": "%" + escapeLikePattern(filter.Email) + "%"})
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	return query.ToSql()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLikePattern(s string) string {
	return likeEscaper.Replace(s)
}
