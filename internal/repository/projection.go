package repository

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
)

const datetimeColumn = `"datetime"`

// Projection is the fixed column list returned by both sales queries.
// Every column is aliased to its JSON field name and NULLs are coalesced
// so rows always scan into domain.SalesRecord.
type Projection struct {
	table string
	// Extended is false when the table has no seller_category / buyer_nipt
	// columns; both are then selected as ''.
	Extended bool
}

// NewProjection quotes table as an identifier. A dotted name is treated as
// schema.table.
func NewProjection(table string, extended bool) (Projection, error) {
	parts := strings.Split(strings.TrimSpace(table), ".")
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			return Projection{}, fmt.Errorf("invalid table name %q", table)
		}
	}
	return Projection{table: pgx.Identifier(parts).Sanitize(), Extended: extended}, nil
}

func (p Projection) Table() string {
	return p.table
}

func (p Projection) columns() string {
	cols := []string{
		`"order_id"::text AS order_id`,
		`COALESCE("seller", '') AS seller`,
		`COALESCE("article_name", '') AS article_name`,
		`COALESCE("category", '') AS category`,
		`COALESCE("quantity", 0)::float8 AS quantity`,
		`COALESCE("total_article_price", 0)::text AS total_article_price`,
		datetimeColumn + ` AS datetime`,
	}
	if p.Extended {
		cols = append(cols,
			`COALESCE("seller_category", '') AS seller_category`,
			`COALESCE("buyer_nipt", '') AS buyer_nipt`,
		)
	} else {
		cols = append(cols,
			`'' AS seller_category`,
			`'' AS buyer_nipt`,
		)
	}
	return strings.Join(cols, ", ")
}

// limit must already be clamped by a domain.LimitPolicy; it is interpolated.
func (p Projection) sinceSQL(limit int) string {
	return "SELECT " + p.columns() +
		" FROM " + p.table +
		" WHERE " + datetimeColumn + " > $1" +
		" ORDER BY " + datetimeColumn + " ASC" +
		" LIMIT " + strconv.Itoa(limit)
}

func (p Projection) rangeSQL(limit int) string {
	return "SELECT " + p.columns() +
		" FROM " + p.table +
		" WHERE " + datetimeColumn + " >= $1 AND " + datetimeColumn + " < $2" +
		" ORDER BY " + datetimeColumn + " ASC" +
		" LIMIT " + strconv.Itoa(limit)
}
