package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodgen/sink"
)

func TestMoneyRoundsHalfUp(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1.125", "1.13"},
		{"1.124", "1.12"},
		{"100", "100.00"},
		{"0.005", "0.01"},
		{"33.333", "33.33"},
	}
	for _, c := range cases {
		m := NewMoney(decimal.RequireFromString(c.in))
		assert.Equal(t, c.want, m.String(), "in %s", c.in)
	}
}

func TestMoneyJSON(t *testing.T) {
	m := NewMoney(decimal.RequireFromString("49.5"))
	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `"49.50"`, string(b))

	var back Money
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.Equal(m.Decimal))
}

func TestMoneyUnmarshalRejectsGarbage(t *testing.T) {
	var m Money
	assert.Error(t, json.Unmarshal([]byte(`"not-a-number"`), &m))
}

func TestOrderJSONRoundTrip(t *testing.T) {
	o := Order{
		Type:          TypeOrder,
		OrderId:       "o-1",
		CustomerId:    "c-1",
		RestaurantId:  "r-1",
		OrderDate:     "2026-08-29T10:00:00Z",
		TotalAmount:   NewMoney(decimal.RequireFromString("423.40")),
		Status:        "placed",
		PaymentMethod: "upi",
		CreatedDate:   "2026-08-29T10:00:00Z",
	}
	_, key, data := o.ToJson()
	assert.Equal(t, "o-1", key)

	var back Order
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, o.OrderId, back.OrderId)
	assert.Equal(t, o.CustomerId, back.CustomerId)
	assert.Equal(t, o.Status, back.Status)
	assert.True(t, back.TotalAmount.Equal(o.TotalAmount.Decimal))

	// The monetary field is a fixed two-decimal string on the wire.
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "423.40", raw["totalamount"])
	assert.Equal(t, TypeOrder, raw["type"])
}

func TestOrderItemAvro(t *testing.T) {
	it := OrderItem{
		Type:        TypeOrderItem,
		OrderItemId: "oi-1",
		OrderId:     "o-1",
		MenuId:      "m-1",
		Quantity:    2,
		Price:       NewMoney(decimal.RequireFromString("60.50")),
		Subtotal:    NewMoney(decimal.RequireFromString("121.00")),
	}
	topic, key, data := it.ToAvro()
	assert.Equal(t, "order_items", topic)
	assert.Equal(t, "oi-1", key)

	native, _, err := orderItemAvroCodec.NativeFromBinary(data)
	require.NoError(t, err)
	fields := native.(map[string]interface{})
	assert.Equal(t, "o-1", fields["order_id"])
	assert.Equal(t, int64(2), fields["quantity"])
	assert.Equal(t, "121.00", fields["subtotal"])
}

// A batch mixes record types, and only the order flow carries Avro codecs.
// Avro format must still emit every record instead of giving up on the rest.
func TestAvroFormatFallsBackToJsonWithoutCodec(t *testing.T) {
	c := &Customer{
		Type:       TypeCustomer,
		CustomerId: "c-1",
		Name:       "Asha Rao",
		Mobile:     "9888877766",
		Email:      "asha.rao@gmail.com",
	}
	topic, key, data := sink.RecordToKafka(c, "avro")
	assert.Equal(t, "customers", topic)
	assert.Equal(t, "c-1", key)
	assert.True(t, json.Valid(data))

	o := &Order{
		Type:        TypeOrder,
		OrderId:     "o-1",
		TotalAmount: NewMoney(decimal.RequireFromString("423.40")),
	}
	topic, key, data = sink.RecordToKafka(o, "avro")
	assert.Equal(t, "orders", topic)
	assert.Equal(t, "o-1", key)
	native, _, err := orderAvroCodec.NativeFromBinary(data)
	require.NoError(t, err)
	assert.Equal(t, "o-1", native.(map[string]interface{})["order_id"])
}
