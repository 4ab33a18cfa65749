package fooddelivery

import (
	"foodgen/models"
	"foodgen/sink"
)

func (g *Generator) Topics() []string {
	return models.Topics()
}

// Generate builds one batch: stable pools of locations, customers (with
// addresses and login audits), restaurants (with menus), and delivery
// agents, then order groups drawn against those pools until the batch
// reaches its target size. Pools may come up short when uniqueness attempts
// run out; later stages tolerate smaller pools.
func (g *Generator) Generate() []sink.SinkRecord {
	target := g.cfg.BatchSize
	rows := make([]sink.SinkRecord, 0, target)

	numCustomers := max(10, target/20)
	numRestaurants := max(5, target/50)
	numAgents := max(5, target/50)
	numLocations := max(3, target/100)

	var locations []*models.Location
	for i := 0; i < numLocations; i++ {
		if l := g.newLocation(); l != nil {
			locations = append(locations, l)
			rows = append(rows, l)
		}
	}

	var customers []*models.Customer
	for attempts := 0; len(customers) < numCustomers && attempts < numCustomers*10; attempts++ {
		if c := g.newCustomer(); c != nil {
			customers = append(customers, c)
			rows = append(rows, c)
		}
	}

	var addresses []*models.Address
	byCustomer := make(map[string][]*models.Address)
	for _, c := range customers {
		n := g.faker.IntRange(1, 2)
		for i := 0; i < n; i++ {
			if a := g.newAddress(c.CustomerId); a != nil {
				addresses = append(addresses, a)
				byCustomer[c.CustomerId] = append(byCustomer[c.CustomerId], a)
				rows = append(rows, a)
			}
		}
		if g.chance(0.4) {
			if la := g.newLoginAudit(c.CustomerId); la != nil {
				rows = append(rows, la)
			}
		}
	}

	var restaurants []*models.Restaurant
	for i := 0; i < numRestaurants; i++ {
		if r := g.newRestaurant(locations); r != nil {
			restaurants = append(restaurants, r)
			rows = append(rows, r)
		}
	}

	menus := make(map[string][]*models.Menu)
	for _, r := range restaurants {
		n := g.faker.IntRange(3, 6)
		for i := 0; i < n; i++ {
			if m := g.newMenu(r.RestaurantId); m != nil {
				menus[r.RestaurantId] = append(menus[r.RestaurantId], m)
				rows = append(rows, m)
			}
		}
		if len(menus[r.RestaurantId]) == 0 {
			m := g.fallbackMenu(r.RestaurantId)
			menus[r.RestaurantId] = append(menus[r.RestaurantId], m)
			rows = append(rows, m)
		}
	}

	var agents []*models.DeliveryAgent
	for i := 0; i < numAgents; i++ {
		if a := g.newAgent(locations); a != nil {
			agents = append(agents, a)
			rows = append(rows, a)
		}
	}

	return g.orderLoop(rows, target, customers, restaurants, menus, agents, addresses, byCustomer)
}

// orderLoop appends order groups (an order, its items, and an optional
// delivery) until the batch reaches the target size. Groups are appended
// whole and the batch is never sliced afterwards, so an order cannot be
// severed from its items; the batch may overshoot the target by at most one
// group.
func (g *Generator) orderLoop(
	rows []sink.SinkRecord,
	target int,
	customers []*models.Customer,
	restaurants []*models.Restaurant,
	menus map[string][]*models.Menu,
	agents []*models.DeliveryAgent,
	addresses []*models.Address,
	byCustomer map[string][]*models.Address,
) []sink.SinkRecord {
	if len(customers) == 0 || len(restaurants) == 0 {
		return rows
	}
	for attempts := 0; len(rows) < target && attempts < target*10; attempts++ {
		cust := customers[g.faker.IntRange(0, len(customers)-1)]
		rest := restaurants[g.faker.IntRange(0, len(restaurants)-1)]
		order, items := g.newOrderWithItems(cust.CustomerId, rest.RestaurantId, menus[rest.RestaurantId])
		if order == nil {
			continue
		}
		rows = append(rows, order)
		for _, it := range items {
			rows = append(rows, it)
		}

		// No agents means no deliveries; that is not an error.
		if g.chance(0.6) && len(agents) > 0 {
			addr := g.pickAddress(cust.CustomerId, addresses, byCustomer)
			if addr != nil {
				agent := agents[g.faker.IntRange(0, len(agents)-1)]
				if d := g.newDelivery(order.OrderId, agent.DeliveryAgentId, addr.AddressId); d != nil {
					rows = append(rows, d)
				}
			}
		}
	}
	return rows
}

// pickAddress prefers one of the customer's own addresses and falls back to
// any existing address; nil when the batch has no addresses at all.
func (g *Generator) pickAddress(customerId string, addresses []*models.Address, byCustomer map[string][]*models.Address) *models.Address {
	if own := byCustomer[customerId]; len(own) > 0 {
		return own[g.faker.IntRange(0, len(own)-1)]
	}
	if len(addresses) > 0 {
		return addresses[g.faker.IntRange(0, len(addresses)-1)]
	}
	return nil
}
