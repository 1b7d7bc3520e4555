package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitPolicy_Resolve(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want int
	}{
		{"absent", "", 50000},
		{"valid", "5", 5},
		{"padded", " 42 ", 42},
		{"at max", "100000", 100000},
		{"above max", "250000", 100000},
		{"non-numeric", "abc", 50000},
		{"trailing garbage", "12abc", 50000},
		{"zero", "0", 50000},
		{"negative", "-3", 50000},
		{"float", "2.5", 50000},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, SinceLimit.Resolve(c.raw))
		})
	}
}

func TestLimitPolicy_RangeCeiling(t *testing.T) {
	assert.Equal(t, 100000, RangeLimit.Resolve(""))
	assert.Equal(t, 200000, RangeLimit.Resolve("999999"))
	assert.Equal(t, 150000, RangeLimit.Resolve("150000"))
}

func TestLimitPolicy_DefaultAboveMaxIsClamped(t *testing.T) {
	p := LimitPolicy{Default: 10, Max: 3}
	assert.Equal(t, 3, p.Resolve(""))
}

func TestSalesRecord_JSONFieldNames(t *testing.T) {
	rec := SalesRecord{
		OrderID:           "A-1",
		Seller:            "Vila",
		ArticleName:       "Chair",
		Category:          "Furniture",
		Quantity:          2,
		TotalArticlePrice: decimal.RequireFromString("59.90"),
		Datetime:          time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	b, err := json.Marshal(rec)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &m))

	assert.Len(t, m, 9)
	assert.Equal(t, "A-1", m["order_id"])
	assert.Equal(t, float64(2), m["quantity"])
	assert.Equal(t, "59.9", m["total_article_price"])
	assert.Equal(t, "2024-01-02T03:04:05Z", m["datetime"])
	assert.Equal(t, "", m["seller_category"])
	assert.Equal(t, "", m["buyer_nipt"])
}

func TestNewSinceEvent(t *testing.T) {
	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	at := time.Date(2024, 1, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))

	ev := NewSinceEvent(SinceQuery{Since: since, Limit: 10}, 7, "req-1", at)

	assert.NotEqual(t, uuid.Nil, ev.ID)
	assert.Equal(t, EndpointSince, ev.Endpoint)
	require.NotNil(t, ev.Since)
	assert.True(t, ev.Since.Equal(since))
	assert.Nil(t, ev.From)
	assert.Nil(t, ev.To)
	assert.Equal(t, 10, ev.Limit)
	assert.Equal(t, 7, ev.Rows)
	assert.Equal(t, time.UTC, ev.At.Location())
}

func TestNewRangeEvent(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	ev := NewRangeEvent(RangeQuery{From: from, To: to, Limit: 3}, 0, "", time.Now())

	assert.Equal(t, EndpointRange, ev.Endpoint)
	require.NotNil(t, ev.From)
	require.NotNil(t, ev.To)
	assert.True(t, ev.To.Equal(to))
	assert.Nil(t, ev.Since)

	b, err := json.Marshal(ev)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "request_id")
	assert.NotContains(t, string(b), `"since"`)
}
