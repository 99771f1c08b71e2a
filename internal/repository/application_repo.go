// Package repository persists completed application records.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"nanoconsult/internal/models"
)

// ApplicationRepository writes records to Postgres.
type ApplicationRepository struct {
	db *sql.DB
}

// NewApplicationRepository returns repository.
func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Save inserts one record. Quote columns stay NULL when the quote could
// not be computed.
func (r *ApplicationRepository) Save(ctx context.Context, record models.ApplicationRecord) error {
	answers, err := json.Marshal(record.Answers)
	if err != nil {
		return err
	}

	var rvsML, accelML, materialCost, materialPriceClient, workCost, totalPriceClient, profit sql.NullFloat64
	if q := record.Quote; q != nil {
		rvsML = sql.NullFloat64{Float64: q.RVSMilliliters, Valid: true}
		accelML = sql.NullFloat64{Float64: q.AcceleratorMilliliters, Valid: true}
		materialCost = sql.NullFloat64{Float64: q.MaterialCostInternal, Valid: true}
		materialPriceClient = sql.NullFloat64{Float64: q.MaterialPriceToClient, Valid: true}
		workCost = sql.NullFloat64{Float64: q.LaborCost, Valid: true}
		totalPriceClient = sql.NullFloat64{Float64: q.TotalPriceToClient, Valid: true}
		profit = sql.NullFloat64{Float64: q.Profit, Valid: true}
	}

	const query = `
		INSERT INTO applications (
			id, chat_id, created_at, aggregate, answers,
			rvs_ml, accel_ml, material_cost, material_price_client,
			work_cost, total_price_client, profit,
			verdict, rationale, printable_quote
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err = r.db.ExecContext(ctx, query,
		record.ID,
		record.ChatID,
		record.Timestamp,
		string(record.Answers.Aggregate),
		answers,
		rvsML,
		accelML,
		materialCost,
		materialPriceClient,
		workCost,
		totalPriceClient,
		profit,
		string(record.Recommendation.Verdict),
		record.Recommendation.Rationale,
		record.PrintableQuote,
	)
	return err
}
