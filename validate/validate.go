// Package validate checks candidate records against their field and
// cross-field constraints and normalizes monetary fields to two decimal
// places with half-up rounding. Validators are pure: they take a candidate
// by value and return the canonical record or a *Failure.
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"foodgen/models"
)

// Failure describes why a candidate record was rejected.
type Failure struct {
	Kind       string
	Id         string
	Violations []string
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s %s: %s", f.Kind, f.Id, strings.Join(f.Violations, "; "))
}

var mobileRe = regexp.MustCompile(`^[6-9]\d{9}$`)

var subtotalTolerance = decimal.RequireFromString("0.01")

var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func isoOk(v string) bool {
	for _, layout := range isoLayouts {
		if _, err := time.Parse(layout, v); err == nil {
			return true
		}
	}
	return false
}

func checkISO(violations []string, field, v string) []string {
	if v == "" || isoOk(v) {
		return violations
	}
	return append(violations, field+": invalid ISO timestamp")
}

func emailOk(v string) bool {
	at := strings.Count(v, "@")
	if at != 1 {
		return false
	}
	local, domain, _ := strings.Cut(v, "@")
	return local != "" && domain != ""
}

func fail(kind, id string, violations []string) (*Failure, bool) {
	if len(violations) == 0 {
		return nil, true
	}
	return &Failure{Kind: kind, Id: id, Violations: violations}, false
}

func Customer(c models.Customer) (models.Customer, error) {
	var violations []string
	if !mobileRe.MatchString(c.Mobile) {
		violations = append(violations, "mobile: must be 10 digits starting with 6-9")
	}
	if !emailOk(c.Email) {
		violations = append(violations, "email: malformed")
	}
	violations = checkISO(violations, "dob", c.Dob)
	violations = checkISO(violations, "created_date", c.CreatedDate)
	if f, ok := fail(models.TypeCustomer, c.CustomerId, violations); !ok {
		return models.Customer{}, f
	}
	return c, nil
}

func Address(a models.Address) (models.Address, error) {
	var violations []string
	if a.Coordinates != "" {
		violations = appendCoordinateViolations(violations, a.Coordinates)
	}
	if a.Pincode != 0 && (a.Pincode < 100000 || a.Pincode > 999999) {
		violations = append(violations, "pincode: must be 6 digits")
	}
	violations = checkISO(violations, "created_date", a.CreatedDate)
	if f, ok := fail(models.TypeAddress, a.AddressId, violations); !ok {
		return models.Address{}, f
	}
	return a, nil
}

func appendCoordinateViolations(violations []string, coordinates string) []string {
	parts := strings.Split(coordinates, ",")
	if len(parts) != 2 {
		return append(violations, "coordinates: must be 'lat,lon'")
	}
	lat, errLat := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lon, errLon := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errLat != nil || errLon != nil {
		return append(violations, "coordinates: must be 'lat,lon'")
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return append(violations, "coordinates: out of range")
	}
	return violations
}

func Location(l models.Location) (models.Location, error) {
	var violations []string
	violations = checkISO(violations, "created_date", l.CreatedDate)
	if f, ok := fail(models.TypeLocation, l.LocationId, violations); !ok {
		return models.Location{}, f
	}
	return l, nil
}

func Restaurant(r models.Restaurant) (models.Restaurant, error) {
	var violations []string
	name := strings.TrimSpace(r.Name)
	if name == "" {
		violations = append(violations, "name: cannot be empty")
	} else if len(name) > 200 {
		violations = append(violations, "name: too long")
	}
	if !r.PricingFor2.IsPositive() {
		violations = append(violations, "pricing_for_2: must be positive")
	}
	violations = checkISO(violations, "created_date", r.CreatedDate)
	if f, ok := fail(models.TypeRestaurant, r.RestaurantId, violations); !ok {
		return models.Restaurant{}, f
	}
	r.Name = name
	r.PricingFor2 = models.NewMoney(r.PricingFor2.Decimal)
	return r, nil
}

func Menu(m models.Menu) (models.Menu, error) {
	var violations []string
	name := strings.TrimSpace(m.ItemName)
	if name == "" {
		violations = append(violations, "itemname: cannot be empty")
	} else if len(name) > 150 {
		violations = append(violations, "itemname: too long")
	}
	if !m.Price.IsPositive() {
		violations = append(violations, "price: must be positive")
	}
	violations = checkISO(violations, "created_date", m.CreatedDate)
	if f, ok := fail(models.TypeMenu, m.MenuId, violations); !ok {
		return models.Menu{}, f
	}
	m.ItemName = name
	m.Price = models.NewMoney(m.Price.Decimal)
	return m, nil
}

// OrderItem validates field constraints and the cross-field subtotal check:
// expected = round_half_up(price * quantity, 2), and the subtotal must lie
// in [expected - 0.01, expected]. Anything above expected, or more than one
// cent below it, is rejected.
func OrderItem(it models.OrderItem) (models.OrderItem, error) {
	var violations []string
	if it.Quantity <= 0 {
		violations = append(violations, "quantity: must be > 0")
	}
	if it.Price.IsNegative() || it.Subtotal.IsNegative() {
		violations = append(violations, "price/subtotal: must be non-negative")
	}
	// The expected subtotal comes from the raw price; rounding the price
	// first would shift what counts as an overcharge.
	if len(violations) == 0 {
		expected := it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))).Round(2)
		low := expected.Sub(subtotalTolerance)
		if it.Subtotal.GreaterThan(expected) || it.Subtotal.LessThan(low) {
			violations = append(violations,
				fmt.Sprintf("subtotal: does not match price*quantity (expected %s, got %s)",
					expected.StringFixed(2), it.Subtotal))
		}
	}
	if f, ok := fail(models.TypeOrderItem, it.OrderItemId, violations); !ok {
		return models.OrderItem{}, f
	}
	it.Price = models.NewMoney(it.Price.Decimal)
	it.Subtotal = models.NewMoney(it.Subtotal.Decimal)
	return it, nil
}

func Order(o models.Order) (models.Order, error) {
	var violations []string
	if o.TotalAmount.IsNegative() {
		violations = append(violations, "totalamount: must be non-negative")
	}
	violations = checkISO(violations, "order_date", o.OrderDate)
	violations = checkISO(violations, "created_date", o.CreatedDate)
	if f, ok := fail(models.TypeOrder, o.OrderId, violations); !ok {
		return models.Order{}, f
	}
	o.TotalAmount = models.NewMoney(o.TotalAmount.Decimal)
	return o, nil
}

func DeliveryAgent(a models.DeliveryAgent) (models.DeliveryAgent, error) {
	var violations []string
	if !mobileRe.MatchString(a.Phone) {
		violations = append(violations, "phone: must be 10 digits starting with 6-9")
	}
	if a.Rating.IsNegative() || a.Rating.GreaterThan(decimal.NewFromInt(5)) {
		violations = append(violations, "rating: must be between 0 and 5")
	}
	violations = checkISO(violations, "created_date", a.CreatedDate)
	if f, ok := fail(models.TypeDeliveryAgent, a.DeliveryAgentId, violations); !ok {
		return models.DeliveryAgent{}, f
	}
	a.Rating = models.NewMoney(a.Rating.Decimal)
	return a, nil
}

func Delivery(d models.Delivery) (models.Delivery, error) {
	var violations []string
	violations = checkISO(violations, "delivery_date", d.DeliveryDate)
	violations = checkISO(violations, "created_date", d.CreatedDate)
	if f, ok := fail(models.TypeDelivery, d.DeliveryId, violations); !ok {
		return models.Delivery{}, f
	}
	return d, nil
}

func LoginAudit(l models.LoginAudit) (models.LoginAudit, error) {
	var violations []string
	violations = checkISO(violations, "lastlogin", l.LastLogin)
	if f, ok := fail(models.TypeLoginAudit, l.LoginId, violations); !ok {
		return models.LoginAudit{}, f
	}
	return l, nil
}
