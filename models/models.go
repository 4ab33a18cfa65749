package models

import (
	"encoding/json"
	"fmt"
	"time"

	"foodgen/sink"
)

// Every record carries a `type` discriminant so that heterogeneous batches
// can be written to a single newline-JSON object and demultiplexed later.
const (
	TypeCustomer      = "customer"
	TypeAddress       = "customeraddressbook"
	TypeLocation      = "location"
	TypeRestaurant    = "restaurant"
	TypeMenu          = "menu"
	TypeOrder         = "orders"
	TypeOrderItem     = "orderitem"
	TypeDeliveryAgent = "deliveryagent"
	TypeDelivery      = "delivery"
	TypeLoginAudit    = "loginaudit"
)

// NowISO returns the current UTC time in ISO-8601.
func NowISO() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

type Customer struct {
	sink.BaseSinkRecord

	Type        string                 `json:"type"`
	CustomerId  string                 `json:"customer_id"`
	Name        string                 `json:"name"`
	Mobile      string                 `json:"mobile"`
	Email       string                 `json:"email"`
	LoginBy     string                 `json:"loginbyusing"`
	Gender      string                 `json:"gender"`
	Dob         string                 `json:"dob"`
	Preferences map[string]interface{} `json:"preferences"`
	CreatedDate string                 `json:"created_date"`
}

func (r *Customer) ToPostgresSql() string {
	prefs, _ := json.Marshal(r.Preferences)
	return fmt.Sprintf(`INSERT INTO %s
(customer_id, name, mobile, email, loginbyusing, gender, dob, preferences, created_date)
values ('%s', '%s', '%s', '%s', '%s', '%s', '%s', '%s', '%s')`,
		"customers", r.CustomerId, r.Name, r.Mobile, r.Email, r.LoginBy, r.Gender, r.Dob, prefs, r.CreatedDate)
}

func (r *Customer) ToJson() (topic string, key string, data []byte) {
	data, _ = json.Marshal(r)
	return "customers", r.CustomerId, data
}

type Address struct {
	sink.BaseSinkRecord

	Type        string `json:"type"`
	AddressId   string `json:"address_id"`
	CustomerId  string `json:"customer_id"`
	FlatNo      string `json:"flatno"`
	HouseNo     string `json:"houseno"`
	Floor       string `json:"floor"`
	Building    string `json:"building"`
	Landmark    string `json:"landmark"`
	Coordinates string `json:"coordinates"`
	PrimaryFlag string `json:"primaryflag"`
	AddressType string `json:"address_type"`
	Locality    string `json:"locality"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     int    `json:"pincode"`
	CreatedDate string `json:"created_date"`
}

func (r *Address) ToPostgresSql() string {
	return fmt.Sprintf(`INSERT INTO %s
(address_id, customer_id, flatno, houseno, floor, building, landmark, coordinates, primaryflag, address_type, locality, city, state, pincode, created_date)
values ('%s', '%s', '%s', '%s', '%s', '%s', '%s', '%s', '%s', '%s', '%s', '%s', '%s', %d, '%s')`,
		"customer_addresses", r.AddressId, r.CustomerId, r.FlatNo, r.HouseNo, r.Floor, r.Building, r.Landmark,
		r.Coordinates, r.PrimaryFlag, r.AddressType, r.Locality, r.City, r.State, r.Pincode, r.CreatedDate)
}

func (r *Address) ToJson() (topic string, key string, data []byte) {
	data, _ = json.Marshal(r)
	return "customer_addresses", r.AddressId, data
}

type Location struct {
	sink.BaseSinkRecord

	Type        string `json:"type"`
	LocationId  string `json:"location_id"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zipcode     string `json:"zipcode"`
	ActiveFlag  string `json:"activeflag"`
	CreatedDate string `json:"created_date"`
}

func (r *Location) ToPostgresSql() string {
	return fmt.Sprintf(`INSERT INTO %s
(location_id, city, state, zipcode, activeflag, created_date)
values ('%s', '%s', '%s', '%s', '%s', '%s')`,
		"locations", r.LocationId, r.City, r.State, r.Zipcode, r.ActiveFlag, r.CreatedDate)
}

func (r *Location) ToJson() (topic string, key string, data []byte) {
	data, _ = json.Marshal(r)
	return "locations", r.LocationId, data
}

type Restaurant struct {
	sink.BaseSinkRecord

	Type         string `json:"type"`
	RestaurantId string `json:"restaurant_id"`
	Name         string `json:"name"`
	CuisineType  string `json:"cuisine_type"`
	PricingFor2  Money  `json:"pricing_for_2"`
	LocationId   string `json:"location_id"`
	CreatedDate  string `json:"created_date"`
}

func (r *Restaurant) ToPostgresSql() string {
	return fmt.Sprintf(`INSERT INTO %s
(restaurant_id, name, cuisine_type, pricing_for_2, location_id, created_date)
values ('%s', '%s', '%s', %s, '%s', '%s')`,
		"restaurants", r.RestaurantId, r.Name, r.CuisineType, r.PricingFor2, r.LocationId, r.CreatedDate)
}

func (r *Restaurant) ToJson() (topic string, key string, data []byte) {
	data, _ = json.Marshal(r)
	return "restaurants", r.RestaurantId, data
}

type Menu struct {
	sink.BaseSinkRecord

	Type         string `json:"type"`
	MenuId       string `json:"menu_id"`
	RestaurantId string `json:"restaurant_id"`
	ItemName     string `json:"itemname"`
	Description  string `json:"description"`
	Price        Money  `json:"price"`
	ActiveFlag   string `json:"activeflag"`
	CreatedDate  string `json:"created_date"`
}

func (r *Menu) ToPostgresSql() string {
	return fmt.Sprintf(`INSERT INTO %s
(menu_id, restaurant_id, itemname, description, price, activeflag, created_date)
values ('%s', '%s', '%s', '%s', %s, '%s', '%s')`,
		"menus", r.MenuId, r.RestaurantId, r.ItemName, r.Description, r.Price, r.ActiveFlag, r.CreatedDate)
}

func (r *Menu) ToJson() (topic string, key string, data []byte) {
	data, _ = json.Marshal(r)
	return "menus", r.MenuId, data
}

type Order struct {
	sink.BaseSinkRecord

	Type          string `json:"type"`
	OrderId       string `json:"order_id"`
	CustomerId    string `json:"customer_id"`
	RestaurantId  string `json:"restaurant_id"`
	OrderDate     string `json:"order_date"`
	TotalAmount   Money  `json:"totalamount"`
	Status        string `json:"status"`
	PaymentMethod string `json:"paymentmethod"`
	CreatedDate   string `json:"created_date"`
}

func (r *Order) ToPostgresSql() string {
	return fmt.Sprintf(`INSERT INTO %s
(order_id, customer_id, restaurant_id, order_date, totalamount, status, paymentmethod, created_date)
values ('%s', '%s', '%s', '%s', %s, '%s', '%s', '%s')`,
		"orders", r.OrderId, r.CustomerId, r.RestaurantId, r.OrderDate, r.TotalAmount, r.Status, r.PaymentMethod, r.CreatedDate)
}

func (r *Order) ToJson() (topic string, key string, data []byte) {
	data, _ = json.Marshal(r)
	return "orders", r.OrderId, data
}

type OrderItem struct {
	sink.BaseSinkRecord

	Type        string `json:"type"`
	OrderItemId string `json:"orderitem_id"`
	OrderId     string `json:"order_id"`
	MenuId      string `json:"menu_id"`
	Quantity    int    `json:"quantity"`
	Price       Money  `json:"price"`
	Subtotal    Money  `json:"subtotal"`
}

func (r *OrderItem) ToPostgresSql() string {
	return fmt.Sprintf(`INSERT INTO %s
(orderitem_id, order_id, menu_id, quantity, price, subtotal)
values ('%s', '%s', '%s', %d, %s, %s)`,
		"order_items", r.OrderItemId, r.OrderId, r.MenuId, r.Quantity, r.Price, r.Subtotal)
}

func (r *OrderItem) ToJson() (topic string, key string, data []byte) {
	data, _ = json.Marshal(r)
	return "order_items", r.OrderItemId, data
}

type DeliveryAgent struct {
	sink.BaseSinkRecord

	Type            string `json:"type"`
	DeliveryAgentId string `json:"deliveryagent_id"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	VehicleType     string `json:"vehicle_type"`
	LocationId      string `json:"location_id"`
	Status          string `json:"status"`
	Rating          Money  `json:"rating"`
	CreatedDate     string `json:"created_date"`
}

func (r *DeliveryAgent) ToPostgresSql() string {
	return fmt.Sprintf(`INSERT INTO %s
(deliveryagent_id, name, phone, vehicle_type, location_id, status, rating, created_date)
values ('%s', '%s', '%s', '%s', '%s', '%s', %s, '%s')`,
		"delivery_agents", r.DeliveryAgentId, r.Name, r.Phone, r.VehicleType, r.LocationId, r.Status, r.Rating, r.CreatedDate)
}

func (r *DeliveryAgent) ToJson() (topic string, key string, data []byte) {
	data, _ = json.Marshal(r)
	return "delivery_agents", r.DeliveryAgentId, data
}

type Delivery struct {
	sink.BaseSinkRecord

	Type            string `json:"type"`
	DeliveryId      string `json:"delivery_id"`
	OrderId         string `json:"order_id"`
	DeliveryAgentId string `json:"deliveryagent_id"`
	DeliveryStatus  string `json:"deliverystatus"`
	EstimatedTime   string `json:"estimated_time"`
	AddressId       string `json:"address_id"`
	DeliveryDate    string `json:"delivery_date"`
	CreatedDate     string `json:"created_date"`
}

func (r *Delivery) ToPostgresSql() string {
	return fmt.Sprintf(`INSERT INTO %s
(delivery_id, order_id, deliveryagent_id, deliverystatus, estimated_time, address_id, delivery_date, created_date)
values ('%s', '%s', '%s', '%s', '%s', '%s', '%s', '%s')`,
		"deliveries", r.DeliveryId, r.OrderId, r.DeliveryAgentId, r.DeliveryStatus, r.EstimatedTime, r.AddressId, r.DeliveryDate, r.CreatedDate)
}

func (r *Delivery) ToJson() (topic string, key string, data []byte) {
	data, _ = json.Marshal(r)
	return "deliveries", r.DeliveryId, data
}

type LoginAudit struct {
	sink.BaseSinkRecord

	Type             string `json:"type"`
	LoginId          string `json:"login_id"`
	CustomerId       string `json:"customer_id"`
	LoginType        string `json:"logintype"`
	DeviceInterface  string `json:"deviceinterface"`
	MobileDeviceName string `json:"mobiledevicename"`
	WebInterface     string `json:"webinterface"`
	LastLogin        string `json:"lastlogin"`
}

func (r *LoginAudit) ToPostgresSql() string {
	return fmt.Sprintf(`INSERT INTO %s
(login_id, customer_id, logintype, deviceinterface, mobiledevicename, webinterface, lastlogin)
values ('%s', '%s', '%s', '%s', '%s', '%s', '%s')`,
		"login_audits", r.LoginId, r.CustomerId, r.LoginType, r.DeviceInterface, r.MobileDeviceName, r.WebInterface, r.LastLogin)
}

func (r *LoginAudit) ToJson() (topic string, key string, data []byte) {
	data, _ = json.Marshal(r)
	return "login_audits", r.LoginId, data
}

// Topics lists every topic/table the generator can produce records for.
func Topics() []string {
	return []string{
		"customers",
		"customer_addresses",
		"locations",
		"restaurants",
		"menus",
		"orders",
		"order_items",
		"delivery_agents",
		"deliveries",
		"login_audits",
	}
}
