package fooddelivery

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"foodgen/models"
	"foodgen/registry"
	"foodgen/validate"
)

func (g *Generator) customerCandidate() models.Customer {
	name := g.faker.Name()
	domain := g.faker.RandomString([]string{"gmail", "outlook", "hotmail", "icloud"})
	email := fmt.Sprintf("%s%d@%s.com",
		strings.ReplaceAll(strings.ToLower(name), " ", "."), g.faker.IntRange(1, 9999), domain)
	dob := g.faker.DateRange(time.Now().AddDate(-90, 0, 0), time.Now().AddDate(-10, 0, 0))

	return models.Customer{
		Type:       models.TypeCustomer,
		CustomerId: g.faker.UUID(),
		Name:       name,
		Mobile:     g.phone(),
		Email:      email,
		LoginBy:    g.faker.RandomString([]string{"OTP", "Google", "Facebook", "Email"}),
		Gender:     g.faker.RandomString([]string{"Male", "Female", "Other"}),
		Dob:        dob.Format("2006-01-02"),
		Preferences: map[string]interface{}{
			"vegan": g.faker.Bool(),
			"spicy": g.faker.RandomString([]string{"low", "medium", "high"}),
		},
		CreatedDate: models.NowISO(),
	}
}

// newCustomer re-rolls candidates until mobile, email and name+dob are all
// previously unissued. Collisions do not count against validation; both
// collisions and validation failures spend one attempt.
func (g *Generator) newCustomer() *models.Customer {
	for attempt := 0; attempt < maxUniquenessAttempts; attempt++ {
		cand := g.customerCandidate()
		entries := []registry.Entry{
			{Kind: registry.CustomerMobile, Key: cand.Mobile},
			{Kind: registry.CustomerEmail, Key: strings.ToLower(cand.Email)},
			{Kind: registry.CustomerNameDob, Key: registry.NameDobKey(cand.Name, cand.Dob)},
		}
		collision := false
		for _, e := range entries {
			if g.reg.Contains(e.Kind, e.Key) {
				collision = true
				break
			}
		}
		if collision {
			continue
		}
		c, err := validate.Customer(cand)
		if err != nil {
			g.dropInvalid(err)
			continue
		}
		if !g.reg.Add(entries...) {
			continue
		}
		return &c
	}
	g.log.WithField("entity", models.TypeCustomer).Warn("unable to create a unique customer after attempts; skipping")
	return nil
}

func (g *Generator) newAddress(customerId string) *models.Address {
	cand := models.Address{
		Type:        models.TypeAddress,
		AddressId:   g.faker.UUID(),
		CustomerId:  customerId,
		FlatNo:      strconv.Itoa(g.faker.IntRange(1, 500)),
		HouseNo:     strconv.Itoa(g.faker.IntRange(1, 2000)),
		Floor:       strconv.Itoa(g.faker.IntRange(0, 40)),
		Building:    g.faker.StreetName(),
		Landmark:    g.faker.Street(),
		Coordinates: fmt.Sprintf("%.6f,%.6f", g.faker.Latitude(), g.faker.Longitude()),
		PrimaryFlag: g.yesNo(),
		AddressType: g.faker.RandomString([]string{"Home", "Work"}),
		Locality:    g.faker.City(),
		City:        g.faker.City(),
		State:       g.faker.State(),
		Pincode:     g.faker.IntRange(100000, 999999),
		CreatedDate: models.NowISO(),
	}
	a, err := validate.Address(cand)
	if err != nil {
		g.dropInvalid(err)
		return nil
	}
	return &a
}

func (g *Generator) newLocation() *models.Location {
	cand := models.Location{
		Type:        models.TypeLocation,
		LocationId:  g.faker.UUID(),
		City:        g.faker.City(),
		State:       g.faker.State(),
		Zipcode:     strconv.Itoa(g.faker.IntRange(100000, 999999)),
		ActiveFlag:  g.yesNo(),
		CreatedDate: models.NowISO(),
	}
	l, err := validate.Location(cand)
	if err != nil {
		g.dropInvalid(err)
		return nil
	}
	return &l
}

// newRestaurant draws a location from the pool when one exists, so that
// restaurants reference real location records.
func (g *Generator) newRestaurant(locations []*models.Location) *models.Restaurant {
	for attempt := 0; attempt < maxUniquenessAttempts; attempt++ {
		locationId := g.faker.UUID()
		if len(locations) > 0 {
			locationId = locations[g.faker.IntRange(0, len(locations)-1)].LocationId
		}
		name := g.faker.Company()
		if g.reg.Contains(registry.RestaurantNameLocation, registry.RestaurantKey(name, locationId)) {
			continue
		}
		cand := models.Restaurant{
			Type:         models.TypeRestaurant,
			RestaurantId: g.faker.UUID(),
			Name:         name,
			CuisineType:  g.faker.RandomString([]string{"Indian", "Chinese", "Italian", "Fast Food", "Mexican"}),
			PricingFor2:  models.MoneyFromFloat(g.faker.Float64Range(100, 2000)),
			LocationId:   locationId,
			CreatedDate:  models.NowISO(),
		}
		r, err := validate.Restaurant(cand)
		if err != nil {
			g.dropInvalid(err)
			continue
		}
		if !g.reg.Add(registry.Entry{Kind: registry.RestaurantNameLocation, Key: registry.RestaurantKey(r.Name, r.LocationId)}) {
			continue
		}
		return &r
	}
	g.log.WithField("entity", models.TypeRestaurant).Warn("unable to create a unique restaurant after attempts; skipping")
	return nil
}

func (g *Generator) newMenu(restaurantId string) *models.Menu {
	for attempt := 0; attempt < maxUniquenessAttempts; attempt++ {
		itemName := g.faker.Dinner()
		if g.reg.Contains(registry.MenuRestaurantItem, registry.MenuKey(restaurantId, itemName)) {
			continue
		}
		cand := models.Menu{
			Type:         models.TypeMenu,
			MenuId:       g.faker.UUID(),
			RestaurantId: restaurantId,
			ItemName:     itemName,
			Description:  g.faker.Sentence(8),
			Price:        models.MoneyFromFloat(g.faker.Float64Range(50, 800)),
			ActiveFlag:   g.yesNo(),
			CreatedDate:  models.NowISO(),
		}
		m, err := validate.Menu(cand)
		if err != nil {
			g.dropInvalid(err)
			continue
		}
		if !g.reg.Add(registry.Entry{Kind: registry.MenuRestaurantItem, Key: registry.MenuKey(m.RestaurantId, m.ItemName)}) {
			continue
		}
		return &m
	}
	g.log.WithField("entity", models.TypeMenu).Warn("unable to create a unique menu item after attempts; skipping")
	return nil
}

// fallbackMenu guarantees a restaurant at least one sellable item when every
// generated menu failed, so the order stage never starves. The fallback key
// is registered like any other to keep global uniqueness consistent.
func (g *Generator) fallbackMenu(restaurantId string) *models.Menu {
	m := models.Menu{
		Type:         models.TypeMenu,
		MenuId:       g.faker.UUID(),
		RestaurantId: restaurantId,
		ItemName:     "Basic Item",
		Description:  "auto-created",
		Price:        models.MoneyFromFloat(100),
		ActiveFlag:   "Y",
		CreatedDate:  models.NowISO(),
	}
	g.reg.Register(registry.MenuRestaurantItem, registry.MenuKey(restaurantId, m.ItemName))
	return &m
}

func (g *Generator) newAgent(locations []*models.Location) *models.DeliveryAgent {
	for attempt := 0; attempt < maxUniquenessAttempts; attempt++ {
		phone := g.phone()
		if g.reg.Contains(registry.AgentPhone, phone) {
			continue
		}
		locationId := g.faker.UUID()
		if len(locations) > 0 {
			locationId = locations[g.faker.IntRange(0, len(locations)-1)].LocationId
		}
		cand := models.DeliveryAgent{
			Type:            models.TypeDeliveryAgent,
			DeliveryAgentId: g.faker.UUID(),
			Name:            g.faker.Name(),
			Phone:           phone,
			VehicleType:     g.faker.RandomString([]string{"bike", "scooter", "car"}),
			LocationId:      locationId,
			Status:          g.faker.RandomString([]string{"available", "busy", "offline"}),
			Rating:          models.NewMoney(decimal.NewFromFloat(g.faker.Float64Range(1, 5)).Round(1)),
			CreatedDate:     models.NowISO(),
		}
		a, err := validate.DeliveryAgent(cand)
		if err != nil {
			g.dropInvalid(err)
			continue
		}
		if !g.reg.Add(registry.Entry{Kind: registry.AgentPhone, Key: a.Phone}) {
			continue
		}
		return &a
	}
	g.log.WithField("entity", models.TypeDeliveryAgent).Warn("unable to create a unique delivery agent after attempts; skipping")
	return nil
}

// newOrderWithItems picks 1-3 distinct menu items, validates each item
// independently, and only builds the order when at least one item survived.
// The order total is the sum of the surviving subtotals plus a service and
// delivery surcharge in [10, 60).
func (g *Generator) newOrderWithItems(customerId, restaurantId string, menus []*models.Menu) (*models.Order, []*models.OrderItem) {
	if len(menus) == 0 {
		return nil, nil
	}
	orderId := g.faker.UUID()

	count := g.faker.IntRange(1, min(3, len(menus)))
	picked := make(map[int]struct{}, count)
	for len(picked) < count {
		picked[g.faker.IntRange(0, len(menus)-1)] = struct{}{}
	}

	var items []*models.OrderItem
	total := decimal.Zero
	for idx := range picked {
		menu := menus[idx]
		qty := g.quantity()
		subtotal := menu.Price.Mul(decimal.NewFromInt(int64(qty))).Round(2)
		cand := models.OrderItem{
			Type:        models.TypeOrderItem,
			OrderItemId: g.faker.UUID(),
			OrderId:     orderId,
			MenuId:      menu.MenuId,
			Quantity:    qty,
			Price:       menu.Price,
			Subtotal:    models.NewMoney(subtotal),
		}
		it, err := validate.OrderItem(cand)
		if err != nil {
			g.dropInvalid(err)
			continue
		}
		items = append(items, &it)
		total = total.Add(it.Subtotal.Decimal)
	}
	if len(items) == 0 {
		return nil, nil
	}

	surcharge := decimal.NewFromFloat(g.faker.Float64Range(10, 60)).Round(2)
	cand := models.Order{
		Type:          models.TypeOrder,
		OrderId:       orderId,
		CustomerId:    customerId,
		RestaurantId:  restaurantId,
		OrderDate:     models.NowISO(),
		TotalAmount:   models.NewMoney(total.Add(surcharge)),
		Status:        g.faker.RandomString([]string{"placed", "preparing", "on_the_way", "delivered"}),
		PaymentMethod: g.faker.RandomString([]string{"card", "cash", "wallet", "upi"}),
		CreatedDate:   models.NowISO(),
	}
	o, err := validate.Order(cand)
	if err != nil {
		g.dropInvalid(err)
		return nil, nil
	}
	return &o, items
}

func (g *Generator) newDelivery(orderId, agentId, addressId string) *models.Delivery {
	cand := models.Delivery{
		Type:            models.TypeDelivery,
		DeliveryId:      g.faker.UUID(),
		OrderId:         orderId,
		DeliveryAgentId: agentId,
		DeliveryStatus:  g.faker.RandomString([]string{"assigned", "picked_up", "delivered"}),
		EstimatedTime:   fmt.Sprintf("00:%02d:00", g.faker.IntRange(10, 40)),
		AddressId:       addressId,
		DeliveryDate:    models.NowISO(),
		CreatedDate:     models.NowISO(),
	}
	d, err := validate.Delivery(cand)
	if err != nil {
		g.dropInvalid(err)
		return nil
	}
	return &d
}

func (g *Generator) newLoginAudit(customerId string) *models.LoginAudit {
	cand := models.LoginAudit{
		Type:             models.TypeLoginAudit,
		LoginId:          g.faker.UUID(),
		CustomerId:       customerId,
		LoginType:        g.faker.RandomString([]string{"web", "mobile"}),
		DeviceInterface:  g.faker.RandomString([]string{"iOS", "Android", "Chrome", "Firefox"}),
		MobileDeviceName: g.faker.UserAgent(),
		WebInterface:     g.faker.UserAgent(),
		LastLogin:        models.NowISO(),
	}
	l, err := validate.LoginAudit(cand)
	if err != nil {
		g.dropInvalid(err)
		return nil
	}
	return &l
}
