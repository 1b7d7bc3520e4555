package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRecord is one row of the sales table as exposed over HTTP.
type SalesRecord struct {
	OrderID           string          `json:"order_id"`
	Seller            string          `json:"seller"`
	ArticleName       string          `json:"article_name"`
	Category          string          `json:"category"`
	Quantity          float64         `json:"quantity"`
	TotalArticlePrice decimal.Decimal `json:"total_article_price"`
	Datetime          time.Time       `json:"datetime"`
	SellerCategory    string          `json:"seller_category"`
	BuyerNIPT         string          `json:"buyer_nipt"`
}

// SinceQuery selects rows with datetime strictly after Since.
type SinceQuery struct {
	Since time.Time
	Limit int
}

// RangeQuery selects rows with From <= datetime < To.
type RangeQuery struct {
	From  time.Time
	To    time.Time
	Limit int
}
