package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"content-platform/internal/domain"
)

const principalColumns = `id, username, display_name, email, is_active, badge,
	bio, phone, website, gender, country, city, zip_code, birthdate,
	profile_picture, profile_banner, created_at, updated_at`

const (
	localColumns    = "role, " + principalColumns + ", password_hash, reset_otp, reset_otp_expires"
	externalColumns = "'user', " + principalColumns + ", provider_id, email_verified"
)

// PostgresPrincipalRepository implements PrincipalRepository using PostgreSQL.
// Local and external principals live in separate tables with the same profile columns.
type PostgresPrincipalRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPrincipalRepository creates a new PostgresPrincipalRepository.
func NewPostgresPrincipalRepository(pool *pgxpool.Pool) *PostgresPrincipalRepository {
	return &PostgresPrincipalRepository{pool: pool}
}

func kindColumns(kind domain.PrincipalKind) string {
	if kind == domain.PrincipalExternal {
		return "'user', " + principalColumns
	}
	return "role, " + principalColumns
}

func scanPrincipal(row rowScanner, kind domain.PrincipalKind, extra ...any) (*domain.Principal, error) {
	p := domain.Principal{Kind: kind}
	dest := []any{
		&p.Role, &p.ID, &p.Username, &p.DisplayName, &p.Email, &p.Active, &p.Badge,
		&p.Profile.Bio, &p.Profile.Phone, &p.Profile.Website, &p.Profile.Gender,
		&p.Profile.Country, &p.Profile.City, &p.Profile.ZipCode, &p.Profile.Birthdate,
		&p.Profile.ProfilePicture, &p.Profile.ProfileBanner, &p.CreatedAt, &p.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanLocal(row rowScanner) (*domain.LocalPrincipal, error) {
	var lp domain.LocalPrincipal
	p, err := scanPrincipal(row, domain.PrincipalLocal, &lp.PasswordHash, &lp.ResetOTP, &lp.ResetOTPExpires)
	if err != nil {
		return nil, err
	}
	lp.Principal = *p
	return &lp, nil
}

func scanExternal(row rowScanner) (*domain.ExternalPrincipal, error) {
	var ep domain.ExternalPrincipal
	p, err := scanPrincipal(row, domain.PrincipalExternal, &ep.ProviderID, &ep.EmailVerified)
	if err != nil {
		return nil, err
	}
	ep.Principal = *p
	return &ep, nil
}

func principalConflict(err error) error {
	constraint, ok := uniqueViolation(err)
	if !ok {
		return nil
	}
	switch {
	case strings.Contains(constraint, "username"):
		return domain.Conflictf("username already taken")
	case strings.Contains(constraint, "email"):
		return domain.Conflictf("email already registered")
	}
	return domain.Conflictf("principal already exists")
}

// CreateLocal inserts a password-based principal.
func (r *PostgresPrincipalRepository) CreateLocal(ctx context.Context, p *domain.LocalPrincipal) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO local_principals (id, username, display_name, email, password_hash, role,
			is_active, badge, profile_picture, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, p.ID, p.Username, p.DisplayName, p.Email, p.PasswordHash, p.Role,
		p.Active, p.Badge, p.Profile.ProfilePicture, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if conflict := principalConflict(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("insert local principal: %w", err)
	}
	return nil
}

// GetLocalByLogin finds a local principal by username or email, case-insensitively.
func (r *PostgresPrincipalRepository) GetLocalByLogin(ctx context.Context, login string) (*domain.LocalPrincipal, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+localColumns+`
		FROM local_principals
		WHERE LOWER(username) = LOWER($1) OR LOWER(email) = LOWER($1)
		LIMIT 1
	`, login)

	lp, err := scanLocal(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get local principal by login: %w", err)
	}
	return lp, nil
}

// CreateExternal inserts an externally authenticated principal.
func (r *PostgresPrincipalRepository) CreateExternal(ctx context.Context, p *domain.ExternalPrincipal) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO external_principals (id, provider_id, username, display_name, email,
			email_verified, is_active, badge, profile_picture, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, p.ID, p.ProviderID, p.Username, p.DisplayName, p.Email,
		p.EmailVerified, p.Active, p.Badge, p.Profile.ProfilePicture, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if conflict := principalConflict(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("insert external principal: %w", err)
	}
	return nil
}

// GetExternalByProviderID finds an external principal by its provider id.
func (r *PostgresPrincipalRepository) GetExternalByProviderID(ctx context.Context, providerID string) (*domain.ExternalPrincipal, error) {
	return r.getExternal(ctx, "provider_id = $1", providerID)
}

// GetExternalByEmail finds an external principal by email, case-insensitively.
func (r *PostgresPrincipalRepository) GetExternalByEmail(ctx context.Context, email string) (*domain.ExternalPrincipal, error) {
	return r.getExternal(ctx, "LOWER(email) = LOWER($1)", email)
}

func (r *PostgresPrincipalRepository) getExternal(ctx context.Context, where string, arg any) (*domain.ExternalPrincipal, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+externalColumns+` FROM external_principals WHERE `+where+` LIMIT 1`, arg)

	ep, err := scanExternal(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get external principal: %w", err)
	}
	return ep, nil
}

// RefreshExternal updates the provider-owned fields of a returning external
// principal. Empty display name or avatar keep the stored value. The username
// is never touched.
func (r *PostgresPrincipalRepository) RefreshExternal(ctx context.Context, id string, profile domain.ExternalProfile) (*domain.ExternalPrincipal, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE external_principals
		SET display_name = COALESCE(NULLIF($2, ''), display_name),
			profile_picture = COALESCE(NULLIF($3, ''), profile_picture),
			email_verified = $4,
			provider_id = COALESCE(NULLIF($5, ''), provider_id),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+externalColumns,
		id, profile.DisplayName, profile.Avatar, profile.EmailVerified, profile.ProviderID)

	ep, err := scanExternal(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("refresh external principal: %w", err)
	}
	return ep, nil
}

// Get resolves a ref against the table its kind names. Absent principals yield (nil, nil).
func (r *PostgresPrincipalRepository) Get(ctx context.Context, ref domain.PrincipalRef) (*domain.Principal, error) {
	table, err := principalTable(ref.Kind)
	if err != nil {
		return nil, err
	}

	row := r.pool.QueryRow(ctx, `SELECT `+kindColumns(ref.Kind)+` FROM `+table+` WHERE id = $1`, ref.ID)
	p, err := scanPrincipal(row, ref.Kind)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get principal: %w", err)
	}
	return p, nil
}

// GetByUsername finds a principal of kind by username, case-insensitively.
func (r *PostgresPrincipalRepository) GetByUsername(ctx context.Context, kind domain.PrincipalKind, username string) (*domain.Principal, error) {
	table, err := principalTable(kind)
	if err != nil {
		return nil, err
	}

	row := r.pool.QueryRow(ctx, `SELECT `+kindColumns(kind)+` FROM `+table+` WHERE LOWER(username) = LOWER($1)`, username)
	p, err := scanPrincipal(row, kind)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get principal by username: %w", err)
	}
	return p, nil
}

// UsernameTaken reports whether username exists in either table.
func (r *PostgresPrincipalRepository) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var taken bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM local_principals WHERE LOWER(username) = LOWER($1))
			OR EXISTS (SELECT 1 FROM external_principals WHERE LOWER(username) = LOWER($1))
	`, username).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("check username: %w", err)
	}
	return taken, nil
}

// EmailTaken reports whether email exists in either table.
func (r *PostgresPrincipalRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	var taken bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM local_principals WHERE LOWER(email) = LOWER($1))
			OR EXISTS (SELECT 1 FROM external_principals WHERE LOWER(email) = LOWER($1))
	`, email).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return taken, nil
}

// Search matches username, display name and email in both tables and returns
// the merged result ordered by username.
func (r *PostgresPrincipalRepository) Search(ctx context.Context, query string, limit int) ([]domain.Principal, error) {
	pattern := "%" + escapeLike(query) + "%"

	var all []domain.Principal
	for _, kind := range domain.PrincipalKinds {
		table, _ := principalTable(kind)
		stmt, args, err := psql.Select(kindColumns(kind)).
			From(table).
			Where(sq.Or{
				sq.ILike{"username": pattern},
				sq.ILike{"display_name": pattern},
				sq.ILike{"email": pattern},
			}).
			OrderBy("username").
			Limit(uint64(limit)).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("build search query: %w", err)
		}

		found, err := r.queryPrincipals(ctx, kind, stmt, args...)
		if err != nil {
			return nil, err
		}
		all = append(all, found...)
	}

	slices.SortFunc(all, func(a, b domain.Principal) int {
		return strings.Compare(strings.ToLower(a.Username), strings.ToLower(b.Username))
	})
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *PostgresPrincipalRepository) queryPrincipals(ctx context.Context, kind domain.PrincipalKind, stmt string, args ...any) ([]domain.Principal, error) {
	rows, err := r.pool.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query principals: %w", err)
	}
	defer rows.Close()

	var out []domain.Principal
	for rows.Next() {
		p, err := scanPrincipal(rows, kind)
		if err != nil {
			return nil, fmt.Errorf("scan principal: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// Update locks the principal row, applies fn and writes the mutable profile
// columns back. Absent principals yield (nil, nil) and fn is not called.
func (r *PostgresPrincipalRepository) Update(ctx context.Context, ref domain.PrincipalRef, fn func(*domain.Principal) error) (*domain.Principal, error) {
	table, err := principalTable(ref.Kind)
	if err != nil {
		return nil, err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `SELECT `+kindColumns(ref.Kind)+` FROM `+table+` WHERE id = $1 FOR UPDATE`, ref.ID)
	p, err := scanPrincipal(row, ref.Kind)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lock principal: %w", err)
	}

	if err := fn(p); err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Now().UTC()

	_, err = tx.Exec(ctx, `
		UPDATE `+table+`
		SET display_name = $2, bio = $3, phone = $4, website = $5, gender = $6,
			country = $7, city = $8, zip_code = $9, birthdate = $10,
			profile_picture = $11, profile_banner = $12, is_active = $13, updated_at = $14
		WHERE id = $1
	`, p.ID, p.DisplayName, p.Profile.Bio, p.Profile.Phone, p.Profile.Website, p.Profile.Gender,
		p.Profile.Country, p.Profile.City, p.Profile.ZipCode, p.Profile.Birthdate,
		p.Profile.ProfilePicture, p.Profile.ProfileBanner, p.Active, p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("update principal: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return p, nil
}

// SetBadge stores the computed badge.
func (r *PostgresPrincipalRepository) SetBadge(ctx context.Context, ref domain.PrincipalRef, badge domain.Badge) error {
	table, err := principalTable(ref.Kind)
	if err != nil {
		return err
	}
	if _, err := r.pool.Exec(ctx, `UPDATE `+table+` SET badge = $2 WHERE id = $1`, ref.ID, badge); err != nil {
		return fmt.Errorf("set badge: %w", err)
	}
	return nil
}

// DeleteLocal hard-deletes a local principal together with every subscription
// edge touching it, in one transaction.
func (r *PostgresPrincipalRepository) DeleteLocal(ctx context.Context, id string) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		DELETE FROM subscriptions
		WHERE (subscriber_id = $1 AND subscriber_kind = 'local')
			OR (target_id = $1 AND target_kind = 'local')
	`, id)
	if err != nil {
		return false, fmt.Errorf("delete subscription edges: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM local_principals WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete local principal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit transaction: %w", err)
	}
	return true, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
