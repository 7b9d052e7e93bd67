package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"content-platform/internal/domain"
)

// PostgresSubscriptionRepository implements SubscriptionRepository using PostgreSQL.
type PostgresSubscriptionRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSubscriptionRepository creates a new PostgresSubscriptionRepository.
func NewPostgresSubscriptionRepository(pool *pgxpool.Pool) *PostgresSubscriptionRepository {
	return &PostgresSubscriptionRepository{pool: pool}
}

// Toggle removes the edge if it exists and creates it otherwise, in a single
// statement. It returns whether the edge exists afterwards.
func (r *PostgresSubscriptionRepository) Toggle(ctx context.Context, subscriber, target domain.PrincipalRef) (bool, error) {
	var subscribed bool
	err := r.pool.QueryRow(ctx, `
		WITH removed AS (
			DELETE FROM subscriptions
			WHERE subscriber_id = $1 AND subscriber_kind = $2
				AND target_id = $3 AND target_kind = $4
			RETURNING 1
		), added AS (
			INSERT INTO subscriptions (subscriber_id, subscriber_kind, target_id, target_kind)
			SELECT $1, $2, $3, $4
			WHERE NOT EXISTS (SELECT 1 FROM removed)
			ON CONFLICT DO NOTHING
			RETURNING 1
		)
		SELECT NOT EXISTS (SELECT 1 FROM removed)
	`, subscriber.ID, subscriber.Kind, target.ID, target.Kind).Scan(&subscribed)
	if err != nil {
		return false, fmt.Errorf("toggle subscription: %w", err)
	}
	return subscribed, nil
}

// Exists reports whether subscriber is subscribed to target.
func (r *PostgresSubscriptionRepository) Exists(ctx context.Context, subscriber, target domain.PrincipalRef) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM subscriptions
			WHERE subscriber_id = $1 AND subscriber_kind = $2
				AND target_id = $3 AND target_kind = $4
		)
	`, subscriber.ID, subscriber.Kind, target.ID, target.Kind).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check subscription: %w", err)
	}
	return exists, nil
}

// ListSubscribers returns the refs subscribed to target, oldest first.
func (r *PostgresSubscriptionRepository) ListSubscribers(ctx context.Context, target domain.PrincipalRef) ([]domain.PrincipalRef, error) {
	return r.listRefs(ctx, `
		SELECT subscriber_id, subscriber_kind FROM subscriptions
		WHERE target_id = $1 AND target_kind = $2
		ORDER BY created_at
	`, target)
}

// ListSubscriptions returns the refs subscriber is subscribed to, oldest first.
func (r *PostgresSubscriptionRepository) ListSubscriptions(ctx context.Context, subscriber domain.PrincipalRef) ([]domain.PrincipalRef, error) {
	return r.listRefs(ctx, `
		SELECT target_id, target_kind FROM subscriptions
		WHERE subscriber_id = $1 AND subscriber_kind = $2
		ORDER BY created_at
	`, subscriber)
}

func (r *PostgresSubscriptionRepository) listRefs(ctx context.Context, query string, ref domain.PrincipalRef) ([]domain.PrincipalRef, error) {
	rows, err := r.pool.Query(ctx, query, ref.ID, ref.Kind)
	if err != nil {
		return nil, fmt.Errorf("query subscriptions: %w", err)
	}
	defer rows.Close()

	refs := make([]domain.PrincipalRef, 0)
	for rows.Next() {
		var ref domain.PrincipalRef
		if err := rows.Scan(&ref.ID, &ref.Kind); err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}
