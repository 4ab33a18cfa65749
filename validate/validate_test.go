package validate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodgen/models"
)

func money(s string) models.Money {
	return models.Money{Decimal: decimal.RequireFromString(s)}
}

func validCustomer() models.Customer {
	return models.Customer{
		Type:        models.TypeCustomer,
		CustomerId:  "c-1",
		Name:        "Asha Rao",
		Mobile:      "9876543210",
		Email:       "asha.rao42@gmail.com",
		LoginBy:     "OTP",
		Gender:      "Female",
		Dob:         "1990-05-12",
		Preferences: map[string]interface{}{"vegan": true, "spicy": "low"},
		CreatedDate: "2026-08-29T10:00:00Z",
	}
}

func TestCustomerMobile(t *testing.T) {
	cases := []struct {
		mobile string
		ok     bool
	}{
		{"9876543210", true},
		{"6000000000", true},
		{"5876543210", false},
		{"98765432", false},
		{"98765432101", false},
		{"9876a43210", false},
		{"", false},
	}
	for _, c := range cases {
		cand := validCustomer()
		cand.Mobile = c.mobile
		_, err := Customer(cand)
		if c.ok {
			assert.NoError(t, err, "mobile %q", c.mobile)
		} else {
			assert.Error(t, err, "mobile %q", c.mobile)
		}
	}
}

func TestCustomerEmail(t *testing.T) {
	cases := []struct {
		email string
		ok    bool
	}{
		{"a@b.com", true},
		{"ab.com", false},
		{"a@b@c.com", false},
		{"@b.com", false},
		{"a@", false},
	}
	for _, c := range cases {
		cand := validCustomer()
		cand.Email = c.email
		_, err := Customer(cand)
		if c.ok {
			assert.NoError(t, err, "email %q", c.email)
		} else {
			assert.Error(t, err, "email %q", c.email)
		}
	}
}

func TestCustomerBadTimestamp(t *testing.T) {
	cand := validCustomer()
	cand.CreatedDate = "yesterday"
	_, err := Customer(cand)
	require.Error(t, err)

	var f *Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, models.TypeCustomer, f.Kind)
	assert.Equal(t, "c-1", f.Id)
	assert.Len(t, f.Violations, 1)
}

func validAddress() models.Address {
	return models.Address{
		Type:        models.TypeAddress,
		AddressId:   "a-1",
		CustomerId:  "c-1",
		FlatNo:      "12",
		HouseNo:     "apartment",
		Floor:       "3",
		Coordinates: "12.971599,77.594566",
		Pincode:     560001,
		CreatedDate: "2026-08-29T10:00:00Z",
	}
}

func TestAddressCoordinates(t *testing.T) {
	cases := []struct {
		coordinates string
		ok          bool
	}{
		{"12.971599,77.594566", true},
		{"-90,180", true},
		{"", true}, // absent is fine
		{"95.0,20.0", false},
		{"45.0,190.0", false},
		{"12.5", false},
		{"one,two", false},
	}
	for _, c := range cases {
		cand := validAddress()
		cand.Coordinates = c.coordinates
		_, err := Address(cand)
		if c.ok {
			assert.NoError(t, err, "coordinates %q", c.coordinates)
		} else {
			assert.Error(t, err, "coordinates %q", c.coordinates)
		}
	}
}

func TestAddressPincode(t *testing.T) {
	cases := []struct {
		pincode int
		ok      bool
	}{
		{560001, true},
		{100000, true},
		{999999, true},
		{0, true}, // absent is fine
		{99999, false},
		{1000000, false},
	}
	for _, c := range cases {
		cand := validAddress()
		cand.Pincode = c.pincode
		_, err := Address(cand)
		if c.ok {
			assert.NoError(t, err, "pincode %d", c.pincode)
		} else {
			assert.Error(t, err, "pincode %d", c.pincode)
		}
	}
}

func TestRestaurantNameBounds(t *testing.T) {
	cand := models.Restaurant{
		Type:         models.TypeRestaurant,
		RestaurantId: "r-1",
		Name:         "  Udupi Grand  ",
		PricingFor2:  money("499.999"),
		LocationId:   "l-1",
		CreatedDate:  "2026-08-29T10:00:00Z",
	}
	r, err := Restaurant(cand)
	require.NoError(t, err)
	assert.Equal(t, "Udupi Grand", r.Name)
	assert.Equal(t, "500.00", r.PricingFor2.String())

	cand.Name = "   "
	_, err = Restaurant(cand)
	assert.Error(t, err)

	long := make([]byte, 201)
	for i := range long {
		long[i] = 'x'
	}
	cand.Name = string(long)
	_, err = Restaurant(cand)
	assert.Error(t, err)

	cand.Name = "Udupi Grand"
	cand.PricingFor2 = money("0")
	_, err = Restaurant(cand)
	assert.Error(t, err)
}

func TestMenuRejectsNegativePrice(t *testing.T) {
	cand := models.Menu{
		Type:         models.TypeMenu,
		MenuId:       "m-1",
		RestaurantId: "r-1",
		ItemName:     "Masala Dosa",
		Price:        money("-5.00"),
		CreatedDate:  "2026-08-29T10:00:00Z",
	}
	_, err := Menu(cand)
	require.Error(t, err)

	var f *Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, models.TypeMenu, f.Kind)
	assert.Contains(t, f.Violations[0], "price")
}

func TestOrderItemSubtotalTolerance(t *testing.T) {
	cases := []struct {
		price    string
		quantity int
		subtotal string
		ok       bool
	}{
		// expected = 14.97
		{"4.99", 3, "14.97", true},
		{"4.99", 3, "14.96", true},  // one cent under is tolerated
		{"4.99", 3, "14.95", false}, // more than one cent under
		{"4.99", 3, "14.98", false}, // never above expected
		// half-up rounding of 3.335 * 2 = 6.67
		{"3.335", 2, "6.67", true},
		{"3.335", 2, "6.68", false},
		{"10.00", 1, "10.00", true},
	}
	for _, c := range cases {
		cand := models.OrderItem{
			Type:        models.TypeOrderItem,
			OrderItemId: "oi-1",
			OrderId:     "o-1",
			MenuId:      "m-1",
			Quantity:    c.quantity,
			Price:       money(c.price),
			Subtotal:    money(c.subtotal),
		}
		_, err := OrderItem(cand)
		if c.ok {
			assert.NoError(t, err, "price %s qty %d subtotal %s", c.price, c.quantity, c.subtotal)
		} else {
			assert.Error(t, err, "price %s qty %d subtotal %s", c.price, c.quantity, c.subtotal)
		}
	}
}

func TestOrderItemFieldBounds(t *testing.T) {
	cand := models.OrderItem{
		Type:        models.TypeOrderItem,
		OrderItemId: "oi-1",
		OrderId:     "o-1",
		MenuId:      "m-1",
		Quantity:    0,
		Price:       money("4.99"),
		Subtotal:    money("0"),
	}
	_, err := OrderItem(cand)
	assert.Error(t, err)

	cand.Quantity = 1
	cand.Subtotal = money("-1")
	_, err = OrderItem(cand)
	assert.Error(t, err)
}

func TestOrderTotal(t *testing.T) {
	cand := models.Order{
		Type:         models.TypeOrder,
		OrderId:      "o-1",
		CustomerId:   "c-1",
		RestaurantId: "r-1",
		OrderDate:    "2026-08-29T10:00:00Z",
		TotalAmount:  money("123.456"),
		CreatedDate:  "2026-08-29T10:00:00Z",
	}
	o, err := Order(cand)
	require.NoError(t, err)
	assert.Equal(t, "123.46", o.TotalAmount.String())

	cand.TotalAmount = money("-1")
	_, err = Order(cand)
	assert.Error(t, err)
}

func TestDeliveryAgentRating(t *testing.T) {
	cand := models.DeliveryAgent{
		Type:            models.TypeDeliveryAgent,
		DeliveryAgentId: "da-1",
		Name:            "Ravi Kumar",
		Phone:           "8123456789",
		Rating:          money("4.3"),
		CreatedDate:     "2026-08-29T10:00:00Z",
	}
	a, err := DeliveryAgent(cand)
	require.NoError(t, err)
	assert.Equal(t, "4.30", a.Rating.String())

	cand.Rating = money("5.01")
	_, err = DeliveryAgent(cand)
	assert.Error(t, err)

	cand.Rating = money("-0.1")
	_, err = DeliveryAgent(cand)
	assert.Error(t, err)
}

func TestDeliveryTimestamps(t *testing.T) {
	cand := models.Delivery{
		Type:            models.TypeDelivery,
		DeliveryId:      "d-1",
		OrderId:         "o-1",
		DeliveryAgentId: "da-1",
		EstimatedTime:   "00:25:00",
		AddressId:       "a-1",
		DeliveryDate:    "2026-08-29T10:30:00Z",
		CreatedDate:     "2026-08-29T10:00:00Z",
	}
	_, err := Delivery(cand)
	assert.NoError(t, err)

	cand.DeliveryDate = "soon"
	_, err = Delivery(cand)
	assert.Error(t, err)
}

func TestLoginAudit(t *testing.T) {
	cand := models.LoginAudit{
		Type:       models.TypeLoginAudit,
		LoginId:    "la-1",
		CustomerId: "c-1",
		LastLogin:  "2026-08-29T10:00:00Z",
	}
	_, err := LoginAudit(cand)
	assert.NoError(t, err)

	cand.LastLogin = "not-a-time"
	_, err = LoginAudit(cand)
	assert.Error(t, err)
}
