package tests

import (
	"fmt"
	"math/rand"
	"testing"

	"foodcourt/storefront-svc/internal/domain"
	"foodcourt/storefront-svc/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func food(id, restaurantID int, price string) domain.Food {
	return domain.Food{
		ID:           id,
		Name:         "Food",
		Price:        decimal.RequireFromString(price),
		RestaurantID: restaurantID,
	}
}

func TestCartService_AddItem(t *testing.T) {
	tests := []struct {
		name          string
		foods         []domain.Food
		wantEntries   int
		wantItemCount int
		wantTotal     string
	}{
		{
			name:          "single item",
			foods:         []domain.Food{food(1, 1, "12.50")},
			wantEntries:   1,
			wantItemCount: 1,
			wantTotal:     "12.50",
		},
		{
			name:          "same food twice increments quantity",
			foods:         []domain.Food{food(1, 1, "12.50"), food(1, 1, "12.50")},
			wantEntries:   1,
			wantItemCount: 2,
			wantTotal:     "25.00",
		},
		{
			name:          "distinct foods",
			foods:         []domain.Food{food(1, 1, "12.75"), food(2, 1, "10.00")},
			wantEntries:   2,
			wantItemCount: 2,
			wantTotal:     "22.75",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			cart := service.NewCartService()
			for _, f := range testCase.foods {
				cart.AddItem(f)
			}

			state := cart.State()
			assert.Len(t, state.Items, testCase.wantEntries)
			assert.Equal(t, testCase.wantItemCount, cart.ItemCount())
			assert.True(t, decimal.RequireFromString(testCase.wantTotal).Equal(state.Total), "total %s", state.Total)
			assert.True(t, state.Total.Equal(cart.Total()))
		})
	}
}

func TestCartService_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name        string
		quantity    int
		wantEntries int
		wantTotal   string
	}{
		{name: "raise quantity", quantity: 3, wantEntries: 1, wantTotal: "30.00"},
		{name: "zero removes entry", quantity: 0, wantEntries: 0, wantTotal: "0"},
		{name: "negative removes entry", quantity: -1, wantEntries: 0, wantTotal: "0"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			cart := service.NewCartService()
			cart.AddItem(food(7, 1, "10.00"))

			cart.UpdateQuantity(7, testCase.quantity)

			state := cart.State()
			assert.Len(t, state.Items, testCase.wantEntries)
			assert.True(t, decimal.RequireFromString(testCase.wantTotal).Equal(state.Total))
		})
	}
}

func TestCartService_RemoveItemRecomputesTotal(t *testing.T) {
	cart := service.NewCartService()
	cart.AddItem(food(1, 1, "10.00"))
	cart.AddItem(food(2, 1, "5.50"))
	cart.AddItem(food(1, 1, "10.00"))
	require.True(t, decimal.RequireFromString("25.50").Equal(cart.Total()))

	cart.RemoveItem(2)

	assert.True(t, decimal.RequireFromString("20.00").Equal(cart.Total()))
	assert.Equal(t, 2, cart.ItemCount())
}

func TestCartService_UnknownFoodIsNoop(t *testing.T) {
	cart := service.NewCartService()
	cart.AddItem(food(1, 1, "10.00"))

	cart.RemoveItem(99)
	cart.UpdateQuantity(99, 4)

	assert.Equal(t, 1, cart.ItemCount())
	assert.True(t, decimal.RequireFromString("10.00").Equal(cart.Total()))
}

func TestCartService_ClearCart(t *testing.T) {
	cart := service.NewCartService()
	cart.AddItem(food(1, 3, "10.00"))
	assert.Equal(t, 3, cart.RestaurantID())

	cart.ClearCart()

	state := cart.State()
	assert.Empty(t, state.Items)
	assert.True(t, state.Total.IsZero())
	assert.Equal(t, 0, cart.ItemCount())
	assert.Equal(t, 0, cart.RestaurantID())
}

func TestCartService_StateIsSnapshot(t *testing.T) {
	cart := service.NewCartService()
	cart.AddItem(food(1, 1, "10.00"))

	state := cart.State()
	state.Items[0].Quantity = 50

	assert.Equal(t, 1, cart.ItemCount())
}

func TestCartService_RemoveOrdered(t *testing.T) {
	cart := service.NewCartService()
	cart.AddItem(food(1, 1, "10.00"))
	cart.AddItem(food(2, 1, "4.50"))
	ordered := cart.State().Items

	cart.AddItem(food(1, 1, "10.00"))
	cart.AddItem(food(3, 1, "7.25"))
	cart.RemoveOrdered(ordered)

	state := cart.State()
	require.Len(t, state.Items, 2)
	assert.Equal(t, 1, state.Items[0].Food.ID)
	assert.Equal(t, 1, state.Items[0].Quantity)
	assert.Equal(t, 3, state.Items[1].Food.ID)
	assert.True(t, decimal.RequireFromString("17.25").Equal(state.Total), "total %s", state.Total)
}

func TestCartService_TotalTracksEverySequence(t *testing.T) {
	menu := []domain.Food{
		food(1, 1, "25.50"),
		food(2, 1, "5.99"),
		food(3, 1, "0.10"),
		food(4, 2, "12.00"),
		food(5, 2, "0.00"),
	}

	for seed := int64(1); seed <= 20; seed++ {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			rng := rand.New(rand.NewSource(seed))
			cart := service.NewCartService()
			quantities := map[int]int{}

			for step := 0; step < 200; step++ {
				f := menu[rng.Intn(len(menu))]
				switch rng.Intn(4) {
				case 0, 1:
					cart.AddItem(f)
					quantities[f.ID]++
				case 2:
					cart.RemoveItem(f.ID)
					delete(quantities, f.ID)
				case 3:
					quantity := rng.Intn(6) - 1
					cart.UpdateQuantity(f.ID, quantity)
					if quantity <= 0 {
						delete(quantities, f.ID)
					} else if _, ok := quantities[f.ID]; ok {
						quantities[f.ID] = quantity
					}
				}

				want := decimal.Zero
				count := 0
				for _, item := range menu {
					want = want.Add(item.Price.Mul(decimal.NewFromInt(int64(quantities[item.ID]))))
					count += quantities[item.ID]
				}

				state := cart.State()
				require.True(t, want.Equal(state.Total), "step %d: total %s, want %s", step, state.Total, want)
				require.True(t, domain.Subtotal(state.Items).Equal(state.Total), "step %d", step)
				require.Equal(t, count, cart.ItemCount(), "step %d", step)
				require.Len(t, state.Items, len(quantities), "step %d", step)
			}
		})
	}
}
