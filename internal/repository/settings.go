package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// settingsID is the fixed key of the singleton settings row.
const settingsID = "global"

// SettingsRepo reads process-wide configuration. Read-only here; mutated by
// admin tooling.
type SettingsRepo struct{ db *pgxpool.Pool }

// NewSettingsRepo creates a new SettingsRepo.
func NewSettingsRepo(db *pgxpool.Pool) *SettingsRepo { return &SettingsRepo{db: db} }

// CourierRate returns the payout rate per delivered package. The bool is
// false when the settings row or the field is absent, so the caller can
// apply its fallback; a read error is never masked as "absent".
func (r *SettingsRepo) CourierRate(ctx context.Context) (decimal.Decimal, bool, error) {
	var rate decimal.NullDecimal
	err := r.db.QueryRow(ctx,
		`SELECT courier_rate_per_package FROM settings WHERE id=$1`, settingsID,
	).Scan(&rate)
	if err != nil {
		if IsNotFound(err) {
			return decimal.Decimal{}, false, nil
		}
		return decimal.Decimal{}, false, fmt.Errorf("get courier rate: %w", err)
	}
	if !rate.Valid {
		return decimal.Decimal{}, false, nil
	}
	return rate.Decimal, true, nil
}
