package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexNumberDecodesNumbersAndStrings(t *testing.T) {
	var payload struct {
		Price FlexNumber `json:"price"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"price": 120.5}`), &payload))
	require.NotNil(t, payload.Price.Decimal())
	assert.True(t, payload.Price.Decimal().Equal(decimal.RequireFromString("120.5")))

	require.NoError(t, json.Unmarshal([]byte(`{"price": "99.90"}`), &payload))
	require.NotNil(t, payload.Price.Decimal())
	assert.True(t, payload.Price.Decimal().Equal(decimal.RequireFromString("99.90")))
}

func TestFlexNumberTreatsBlankAndGarbageAsAbsent(t *testing.T) {
	cases := map[string]string{
		"blank string": `{"price": ""}`,
		"spaces":       `{"price": "   "}`,
		"null":         `{"price": null}`,
		"absent":       `{}`,
		"garbage":      `{"price": "abc"}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			var payload struct {
				Price FlexNumber `json:"price"`
			}
			require.NoError(t, json.Unmarshal([]byte(body), &payload))
			assert.Nil(t, payload.Price.Decimal())
			assert.Nil(t, payload.Price.Int())
		})
	}
}

func TestFlexNumberIntDistinguishesZeroFromAbsent(t *testing.T) {
	var payload struct {
		Qty FlexNumber `json:"qty"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"qty": 0}`), &payload))
	require.NotNil(t, payload.Qty.Int())
	assert.Equal(t, 0, *payload.Qty.Int())

	require.NoError(t, json.Unmarshal([]byte(`{"qty": -3}`), &payload))
	assert.Nil(t, payload.Qty.Int())
}

func TestSyncRequestValidate(t *testing.T) {
	assert.Error(t, SyncRequest{}.Validate())
	assert.Error(t, SyncRequest{SKU: "   "}.Validate())
	assert.NoError(t, SyncRequest{SKU: "ABC-1"}.Validate())
}

func TestMarketKeysSkipsAbsentAndSorts(t *testing.T) {
	price := decimal.NewFromInt(10)
	req := SyncRequest{
		SKU: "ABC-1",
		MarketPrices: map[string]*decimal.Decimal{
			MarketUAE:     &price,
			MarketAsia:    nil,
			MarketAmerica: &price,
		},
	}
	assert.Equal(t, []string{MarketAmerica, MarketUAE}, req.MarketKeys())
}
