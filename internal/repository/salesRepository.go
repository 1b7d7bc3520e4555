package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/RaikyD/vila-sales-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type SalesRepo interface {
	Since(ctx context.Context, q domain.SinceQuery) ([]domain.SalesRecord, error)
	Range(ctx context.Context, q domain.RangeQuery) ([]domain.SalesRecord, error)
}

// Querier is the part of *pgxpool.Pool the repository needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type SalesRepository struct {
	db   Querier
	proj Projection
}

func NewSalesRepository(db Querier, proj Projection) *SalesRepository {
	return &SalesRepository{db: db, proj: proj}
}

func (r *SalesRepository) Since(ctx context.Context, q domain.SinceQuery) ([]domain.SalesRecord, error) {
	if q.Limit < 1 {
		return nil, fmt.Errorf("sales since: invalid limit %d", q.Limit)
	}
	return r.query(ctx, "sales since", r.proj.sinceSQL(q.Limit), q.Limit, q.Since.UTC())
}

func (r *SalesRepository) Range(ctx context.Context, q domain.RangeQuery) ([]domain.SalesRecord, error) {
	if q.Limit < 1 {
		return nil, fmt.Errorf("sales range: invalid limit %d", q.Limit)
	}
	return r.query(ctx, "sales range", r.proj.rangeSQL(q.Limit), q.Limit, q.From.UTC(), q.To.UTC())
}

func (r *SalesRepository) query(ctx context.Context, op, sql string, limit int, args ...any) ([]domain.SalesRecord, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := make([]domain.SalesRecord, 0, min(limit, 1024))
	for rows.Next() {
		var (
			rec   domain.SalesRecord
			price string
			ts    time.Time
		)
		if err := rows.Scan(
			&rec.OrderID,
			&rec.Seller,
			&rec.ArticleName,
			&rec.Category,
			&rec.Quantity,
			&price,
			&ts,
			&rec.SellerCategory,
			&rec.BuyerNIPT,
		); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		rec.TotalArticlePrice, err = decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("%s: total_article_price %q: %w", op, price, err)
		}
		rec.Datetime = ts.UTC()
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}
