package order

import (
	"fmt"
	"strings"
	"time"
)

// CallType classifies what the caller wanted.
type CallType string

const (
	CallOrder   CallType = "order"
	CallInquiry CallType = "inquiry"
)

// ServiceType is how the order will be served.
type ServiceType string

const (
	ServiceDineIn      ServiceType = "dine_in"
	ServiceTakeout     ServiceType = "takeout"
	ServiceDelivery    ServiceType = "delivery"
	ServiceUnspecified ServiceType = "unspecified"
)

// Order statuses, in kitchen order. UpdateStatus rejects anything else.
const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

var validStatuses = map[string]bool{
	StatusPending:   true,
	StatusPreparing: true,
	StatusReady:     true,
	StatusDelivered: true,
	StatusCancelled: true,
}

// ValidStatus reports whether s is an accepted order status.
func ValidStatus(s string) bool {
	return validStatuses[s]
}

// LineItem is one validated order line. TotalPrice is always
// UnitPrice × Quantity, never taken from upstream.
type LineItem struct {
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// Order is the canonical, normalized order. Subtotal is always derived
// from the line items; the extractor's declared total is only ever used
// for anomaly logging.
type Order struct {
	CallType        CallType    `json:"call_type"`
	ServiceType     ServiceType `json:"service_type"`
	Items           []LineItem  `json:"items"`
	DeliveryAddress string      `json:"delivery_address"`
	Subtotal        float64     `json:"subtotal"`
	Notes           string      `json:"notes"`
}

// ItemsSummary renders the display string shown on the dashboard,
// e.g. "2× Menu Curry, Wings x6".
func (o *Order) ItemsSummary() string {
	parts := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		if it.Quantity > 1 {
			parts = append(parts, fmt.Sprintf("%d× %s", it.Quantity, it.Name))
		} else {
			parts = append(parts, it.Name)
		}
	}
	return strings.Join(parts, ", ")
}

// DeliveryQuote is the pricer's output. For non-delivery orders it is
// the zero quote.
type DeliveryQuote struct {
	DistanceKm       float64 `json:"distance_km"`
	Fee              float64 `json:"fee"`
	FeeWaived        bool    `json:"fee_waived"`
	AddressVerified  bool    `json:"address_verified"`
	FormattedAddress string  `json:"formatted_address"`
}

// PersistedOrder is the stored record: Order + DeliveryQuote + call
// identity. Only Status changes after creation.
type PersistedOrder struct {
	CallID          string        `json:"call_id"`
	PhoneNumber     string        `json:"phone_number"`
	CallType        CallType      `json:"call_type"`
	ServiceType     ServiceType   `json:"service_type"`
	Items           []LineItem    `json:"items"`
	ItemsSummary    string        `json:"items_summary"`
	DeliveryAddress string        `json:"delivery_address"`
	Quote           DeliveryQuote `json:"delivery"`
	Subtotal        float64       `json:"subtotal"`
	Total           float64       `json:"total"`
	Notes           string        `json:"notes"`
	Status          string        `json:"status"`
	RawTranscript   string        `json:"raw_transcript"`
	CreatedAt       time.Time     `json:"created_at"`
}

// WebhookCall is the telephony provider's payload for one finished call.
type WebhookCall struct {
	CallID         string `json:"call_id"`
	Transcript     string `json:"transcript"`
	FromNumber     string `json:"from_number"`
	StartTimestamp int64  `json:"start_timestamp"`
	DurationMs     int64  `json:"duration_ms"`
}
