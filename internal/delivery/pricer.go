package delivery

import (
	"context"
	"log"
	"math"

	"github.com/KarmaGirafe/chicken-hot-system/internal/order"
)

// Restaurant location: Chicken Hot, Dreux.
const (
	RestaurantLat = 48.7372
	RestaurantLon = 1.3664
)

// Orders above this subtotal get free delivery.
const freeDeliveryThreshold = 20.00

// Pricer computes delivery quotes against the fixed restaurant
// location. An unreachable or unsure geocoder never blocks an order:
// the quote falls back to fee 0 with the address left unverified.
type Pricer struct {
	geocoder Geocoder
	lat      float64
	lon      float64
}

func NewPricer(geocoder Geocoder) *Pricer {
	return &Pricer{
		geocoder: geocoder,
		lat:      RestaurantLat,
		lon:      RestaurantLon,
	}
}

// Quote prices delivery for one order. Non-delivery orders and orders
// without an address short-circuit to the zero quote; the geocoder is
// called at most once.
func (p *Pricer) Quote(ctx context.Context, o *order.Order) order.DeliveryQuote {
	if o.ServiceType != order.ServiceDelivery || o.DeliveryAddress == "" {
		return order.DeliveryQuote{}
	}

	res, err := p.geocoder.Resolve(ctx, o.DeliveryAddress)
	if err != nil || !res.Valid {
		if err != nil {
			log.Printf("delivery: geocoding %q failed: %v", o.DeliveryAddress, err)
		}
		return order.DeliveryQuote{
			FormattedAddress: o.DeliveryAddress,
		}
	}

	distance := round2(HaversineKm(p.lat, p.lon, res.Lat, res.Lon))

	quote := order.DeliveryQuote{
		DistanceKm:       distance,
		AddressVerified:  true,
		FormattedAddress: res.FormattedAddress,
	}

	if o.Subtotal > freeDeliveryThreshold {
		quote.FeeWaived = true
		return quote
	}

	quote.Fee = feeForDistance(distance)
	return quote
}

// feeForDistance is the distance band table.
func feeForDistance(km float64) float64 {
	switch {
	case km <= 3:
		return 2.00
	case km <= 5:
		return 3.00
	case km <= 8:
		return 4.00
	default:
		return 5.00
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
