package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPricingTable() *PricingTable {
	return &PricingTable{
		Size: map[Size]decimal.Decimal{
			SizeSmall:  decimal.NewFromFloat(8.99),
			SizeMedium: decimal.NewFromInt(10),
			SizeLarge:  decimal.NewFromFloat(13.49),
		},
		ToppingPrices: map[string]map[ToppingQuantity]decimal.Decimal{
			"cheese": {
				QuantityRegular: decimal.NewFromInt(1),
				QuantityExtra:   decimal.NewFromInt(2),
			},
			"pepperoni": {
				QuantityRegular: decimal.NewFromFloat(1.5),
				QuantityExtra:   decimal.NewFromFloat(2.5),
			},
			"sun_dried_tomato": {
				QuantityRegular: decimal.NewFromFloat(1.25),
			},
		},
	}
}

func TestComputeCustomPrice_BasePlusToppingsTimesQuantity(t *testing.T) {
	table := testPricingTable()

	// medium (10) + extra cheese (2), two pizzas => (10+2)*2 = 24
	total, err := ComputeCustomPrice(table, SizeMedium, []Topping{
		{Name: "cheese", Quantity: QuantityExtra},
	}, 2)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(24)), "got %s", total)
}

func TestComputeCustomPrice_NoToppings(t *testing.T) {
	table := testPricingTable()

	total, err := ComputeCustomPrice(table, SizeSmall, nil, 1)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromFloat(8.99)))
}

func TestComputeCustomPrice_Deterministic(t *testing.T) {
	table := testPricingTable()
	toppings := []Topping{
		{Name: "cheese", Quantity: QuantityRegular},
		{Name: "pepperoni", Quantity: QuantityExtra},
	}

	first, err := ComputeCustomPrice(table, SizeLarge, toppings, 3)
	require.NoError(t, err)
	second, err := ComputeCustomPrice(table, SizeLarge, toppings, 3)
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
	// (13.49 + 1 + 2.5) * 3 = 50.97
	assert.True(t, first.Equal(decimal.NewFromFloat(50.97)), "got %s", first)
}

func TestComputeCustomPrice_UnpricedSizeRejected(t *testing.T) {
	table := &PricingTable{
		Size: map[Size]decimal.Decimal{SizeMedium: decimal.NewFromInt(10)},
	}

	_, err := ComputeCustomPrice(table, SizeLarge, nil, 1)
	require.ErrorIs(t, err, ErrSizeNotPriced)
}

func TestComputeCustomPrice_UnpricedToppingRejected(t *testing.T) {
	table := testPricingTable()

	_, err := ComputeCustomPrice(table, SizeMedium, []Topping{
		{Name: "anchovies", Quantity: QuantityRegular},
	}, 1)
	require.ErrorIs(t, err, ErrToppingNotPriced)
}

func TestComputeCustomPrice_UnpricedTierRejected(t *testing.T) {
	table := testPricingTable()

	// sun_dried_tomato has no "extra" tier
	_, err := ComputeCustomPrice(table, SizeMedium, []Topping{
		{Name: "sun_dried_tomato", Quantity: QuantityExtra},
	}, 1)
	require.ErrorIs(t, err, ErrToppingNotPriced)
}

func TestComputeCustomPrice_InvalidQuantity(t *testing.T) {
	table := testPricingTable()

	_, err := ComputeCustomPrice(table, SizeMedium, nil, 0)
	require.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = ComputeCustomPrice(table, SizeMedium, nil, -2)
	require.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestToppingName_MultiUnderscoreRoundTrip(t *testing.T) {
	cases := []struct {
		wire    string
		display string
	}{
		{"cheese", "cheese"},
		{"green_pepper", "green pepper"},
		{"sun_dried_tomato", "sun dried tomato"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.display, ToppingDisplayName(tc.wire))
		assert.Equal(t, tc.wire, ToppingWireName(tc.display))
		assert.Equal(t, tc.wire, ToppingWireName(ToppingDisplayName(tc.wire)))
	}
}

func TestSpecialtyPizza_TotalPrice(t *testing.T) {
	pizza := &SpecialtyPizza{
		ID:       "margherita",
		Name:     "Margherita",
		Toppings: []string{"cheese", "basil"},
		Price: map[Size]decimal.Decimal{
			SizeMedium: decimal.NewFromFloat(12.99),
		},
	}

	total, err := pizza.TotalPrice(SizeMedium, 2)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromFloat(25.98)), "got %s", total)

	_, err = pizza.TotalPrice(SizeLarge, 1)
	require.ErrorIs(t, err, ErrSizeNotPriced)

	_, err = pizza.TotalPrice(SizeMedium, 0)
	require.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestSpecialtyPizza_HasTopping(t *testing.T) {
	pizza := &SpecialtyPizza{Toppings: []string{"cheese", "pepperoni"}}

	assert.True(t, pizza.HasTopping("cheese"))
	assert.False(t, pizza.HasTopping("pineapple"))
}
