package registry

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsRegister(t *testing.T) {
	r := New()
	assert.False(t, r.Contains(CustomerMobile, "9876543210"))

	r.Register(CustomerMobile, "9876543210")
	assert.True(t, r.Contains(CustomerMobile, "9876543210"))
	// Kinds are independent key spaces.
	assert.False(t, r.Contains(AgentPhone, "9876543210"))
	assert.Equal(t, 1, r.Len(CustomerMobile))
}

func TestAddIsAllOrNothing(t *testing.T) {
	r := New()
	ok := r.Add(
		Entry{Kind: CustomerMobile, Key: "9876543210"},
		Entry{Kind: CustomerEmail, Key: "asha@gmail.com"},
	)
	require.True(t, ok)

	// One overlapping key fails the whole registration.
	ok = r.Add(
		Entry{Kind: CustomerMobile, Key: "6000000000"},
		Entry{Kind: CustomerEmail, Key: "asha@gmail.com"},
	)
	require.False(t, ok)
	assert.False(t, r.Contains(CustomerMobile, "6000000000"))
}

func TestReset(t *testing.T) {
	r := New()
	r.Register(MenuRestaurantItem, MenuKey("r-1", "Basic Item"))
	require.Equal(t, 1, r.Len(MenuRestaurantItem))

	r.Reset()
	assert.Equal(t, 0, r.Len(MenuRestaurantItem))
}

func TestConcurrentAddClaimsKeyOnce(t *testing.T) {
	r := New()
	var wins int64
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if r.Add(Entry{Kind: AgentPhone, Key: "8123456789"}) {
				atomic.AddInt64(&wins, 1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(1), wins)
}

func TestConcurrentDistinctKeys(t *testing.T) {
	r := New()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Register(CustomerMobile, fmt.Sprintf("98765%05d", i))
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 100, r.Len(CustomerMobile))
}

func TestKeyHelpers(t *testing.T) {
	assert.Equal(t, "asha rao|1990-05-12", NameDobKey("  Asha Rao ", "1990-05-12"))
	assert.Equal(t, "udupi grand|l-1", RestaurantKey("Udupi Grand", "l-1"))
	assert.Equal(t, "r-1|basic item", MenuKey("r-1", " Basic Item "))
}
