// Package repository archives computed report rows to Postgres. The
// archive is append-only and optional; the engine itself keeps no
// state between runs.
package repository

import (
	"database/sql"
	"fmt"

	"github.com/hsmb/treasury/internal/models"
)

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// SaveSnapshot appends one computed report row to the archive.
func (r *Repository) SaveSnapshot(snap models.Snapshot) error {
	query := `
		INSERT INTO treasury.snapshots (
			report_date, historical, projected,
			assets, liabilities, capital,
			dues, donations, food_donations, food_expenses, rent,
			expenses, income, capital_target,
			members, donating_members, joined, departed,
			projected_capital, projected_dues, projected_donations,
			projected_members, projected_donating_members,
			projected_capital_target, projected_food_profit,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24,
			$25, CURRENT_TIMESTAMP)`
	_, err := r.db.Exec(query,
		snap.Date, snap.Historical, snap.Projected,
		snap.Assets, snap.Liabilities, snap.Capital,
		snap.Dues, snap.Donations, snap.FoodDonations, snap.FoodExpenses, snap.Rent,
		snap.Expenses, snap.Income, snap.CapitalTarget,
		snap.Members, snap.DonatingMembers, snap.Joined, snap.Departed,
		snap.ProjectedCapital, snap.ProjectedDues, snap.ProjectedDonations,
		snap.ProjectedMembers, snap.ProjectedDonatingMembers,
		snap.ProjectedCapitalTarget, snap.ProjectedFoodProfit,
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot for %s: %w", snap.Date.Format("2006-01-02"), err)
	}
	return nil
}

// SaveSeries archives a full report run.
func (r *Repository) SaveSeries(series models.Series) error {
	for _, snap := range series {
		if err := r.SaveSnapshot(snap); err != nil {
			return err
		}
	}
	return nil
}
