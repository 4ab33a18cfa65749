package models

import (
	"github.com/linkedin/goavro/v2"
)

var orderAvroSchema string = `
{
	"type": "record",
	"name": "Order",
	"fields": [
	  { "name": "order_id", "type": "string" },
	  { "name": "customer_id", "type": "string" },
	  { "name": "restaurant_id", "type": "string" },
	  { "name": "order_date", "type": "string" },
	  { "name": "totalamount", "type": "string" },
	  { "name": "status", "type": "string" },
	  { "name": "paymentmethod", "type": "string" },
	  { "name": "created_date", "type": "string" }
	]
}
`

var orderItemAvroSchema string = `
{
	"type": "record",
	"name": "OrderItem",
	"fields": [
	  { "name": "orderitem_id", "type": "string" },
	  { "name": "order_id", "type": "string" },
	  { "name": "menu_id", "type": "string" },
	  { "name": "quantity", "type": "long" },
	  { "name": "price", "type": "string" },
	  { "name": "subtotal", "type": "string" }
	]
}
`

var orderAvroCodec *goavro.Codec = nil
var orderItemAvroCodec *goavro.Codec = nil

func init() {
	var err error
	orderAvroCodec, err = goavro.NewCodec(orderAvroSchema)
	if err != nil {
		panic(err)
	}
	orderItemAvroCodec, err = goavro.NewCodec(orderItemAvroSchema)
	if err != nil {
		panic(err)
	}
}

func (r *Order) ToAvro() (topic string, key string, data []byte) {
	obj := map[string]interface{}{
		"order_id":      r.OrderId,
		"customer_id":   r.CustomerId,
		"restaurant_id": r.RestaurantId,
		"order_date":    r.OrderDate,
		"totalamount":   r.TotalAmount.String(),
		"status":        r.Status,
		"paymentmethod": r.PaymentMethod,
		"created_date":  r.CreatedDate,
	}
	binary, err := orderAvroCodec.BinaryFromNative(nil, obj)
	if err != nil {
		panic(err)
	}
	return "orders", r.OrderId, binary
}

func (r *OrderItem) ToAvro() (topic string, key string, data []byte) {
	obj := map[string]interface{}{
		"orderitem_id": r.OrderItemId,
		"order_id":     r.OrderId,
		"menu_id":      r.MenuId,
		"quantity":     int64(r.Quantity),
		"price":        r.Price.String(),
		"subtotal":     r.Subtotal.String(),
	}
	binary, err := orderItemAvroCodec.BinaryFromNative(nil, obj)
	if err != nil {
		panic(err)
	}
	return "order_items", r.OrderItemId, binary
}
