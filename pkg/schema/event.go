package schema

import "github.com/hamba/avro/v2"

const ClientEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "diveshop",
	"name": "client_event",
	"fields": [
		{"name": "kind", "type": "string"},
		{"name": "cart_id", "type": "string"},
		{"name": "product_id", "type": "long"},
		{"name": "variant_id", "type": "string"},
		{"name": "quantity", "type": "int"},
		{"name": "price", "type": {
			"type": "record",
			"name": "event_price",
			"fields": [
				{"name": "amount", "type": "double"},
				{"name": "currency", "type": "string"}
			]
		}},
		{"name": "occurred_at_ms", "type": "long"}
	]
}`

type (
	ClientEventV1 struct {
		Kind         string       `avro:"kind"`
		CartID       string       `avro:"cart_id"`
		ProductID    int64        `avro:"product_id"`
		VariantID    string       `avro:"variant_id"`
		Quantity     int          `avro:"quantity"`
		Price        EventPriceV1 `avro:"price"`
		OccurredAtMS int64        `avro:"occurred_at_ms"`
	}

	EventPriceV1 struct {
		Amount   float64 `avro:"amount"`
		Currency string  `avro:"currency"`
	}
)

// ClientEventV1Avro parses the v1 schema text.
// Panics on malformed schema text.
func ClientEventV1Avro() avro.Schema {
	return avro.MustParse(ClientEventSchemaTextV1)
}
