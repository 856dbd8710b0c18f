package delivery

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/KarmaGirafe/chicken-hot-system/internal/order"
)

// --------------------------------------------------
// Mock geocoder
// --------------------------------------------------

type mockGeocoder struct {
	result GeoResult
	err    error
	calls  int
}

func (m *mockGeocoder) Resolve(ctx context.Context, address string) (GeoResult, error) {
	m.calls++
	return m.result, m.err
}

// atKm returns a GeoResult roughly km kilometers due north of the
// restaurant (one degree of latitude ≈ 111.19 km).
func atKm(km float64) GeoResult {
	return GeoResult{
		Valid:            true,
		Lat:              RestaurantLat + km/111.19,
		Lon:              RestaurantLon,
		FormattedAddress: "résolu",
	}
}

func deliveryOrder(subtotal float64) *order.Order {
	return &order.Order{
		ServiceType:     order.ServiceDelivery,
		DeliveryAddress: "12 rue du Bois Sabot, Dreux",
		Subtotal:        subtotal,
	}
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestQuote_NonDeliveryNeverGeocodes(t *testing.T) {
	geo := &mockGeocoder{result: atKm(2)}
	pricer := NewPricer(geo)

	for _, st := range []order.ServiceType{
		order.ServiceDineIn,
		order.ServiceTakeout,
		order.ServiceUnspecified,
	} {
		quote := pricer.Quote(context.Background(), &order.Order{ServiceType: st, Subtotal: 13.80})
		if quote.Fee != 0 || quote.DistanceKm != 0 || quote.FeeWaived {
			t.Errorf("%s: expected the zero quote, got %+v", st, quote)
		}
	}

	if geo.calls != 0 {
		t.Fatalf("geocoder must not be called for non-delivery, got %d calls", geo.calls)
	}
}

func TestQuote_EmptyAddressShortCircuits(t *testing.T) {
	geo := &mockGeocoder{result: atKm(2)}
	pricer := NewPricer(geo)

	o := &order.Order{ServiceType: order.ServiceDelivery, Subtotal: 13.80}
	quote := pricer.Quote(context.Background(), o)

	if quote.Fee != 0 || geo.calls != 0 {
		t.Errorf("empty address: expected zero quote and no geocoder call, got %+v (%d calls)", quote, geo.calls)
	}
}

func TestQuote_FeeBands(t *testing.T) {
	cases := []struct {
		km  float64
		fee float64
	}{
		{1.0, 2.00},
		{2.9, 2.00},
		{4.0, 3.00},
		{6.5, 4.00},
		{11.0, 5.00},
	}

	var lastFee float64
	for _, tc := range cases {
		geo := &mockGeocoder{result: atKm(tc.km)}
		pricer := NewPricer(geo)

		quote := pricer.Quote(context.Background(), deliveryOrder(13.80))

		if quote.Fee != tc.fee {
			t.Errorf("%.1f km: expected fee %.2f, got %.2f (distance %.2f)", tc.km, tc.fee, quote.Fee, quote.DistanceKm)
		}
		if quote.Fee < lastFee {
			t.Errorf("fee must be non-decreasing in distance, %.2f after %.2f", quote.Fee, lastFee)
		}
		lastFee = quote.Fee

		if !quote.AddressVerified {
			t.Error("valid geocode should mark the address verified")
		}
		if geo.calls != 1 {
			t.Errorf("expected exactly one geocoder call, got %d", geo.calls)
		}
	}
}

func TestQuote_HighValueWaiver(t *testing.T) {
	geo := &mockGeocoder{result: atKm(7)}
	pricer := NewPricer(geo)

	quote := pricer.Quote(context.Background(), deliveryOrder(22.00))

	if quote.Fee != 0 {
		t.Errorf("expected fee 0 above the threshold, got %.2f", quote.Fee)
	}
	if !quote.FeeWaived {
		t.Error("expected fee_waived")
	}
}

func TestQuote_ThresholdIsInclusive(t *testing.T) {
	// Exactly 20.00 still pays the distance fee.
	geo := &mockGeocoder{result: atKm(4)}
	pricer := NewPricer(geo)

	quote := pricer.Quote(context.Background(), deliveryOrder(20.00))

	if quote.Fee != 3.00 {
		t.Errorf("subtotal 20.00 must still be charged, got fee %.2f", quote.Fee)
	}
	if quote.FeeWaived {
		t.Error("subtotal 20.00 must not waive the fee")
	}
}

func TestQuote_GeocodingFailureNeverBlocks(t *testing.T) {
	for name, geo := range map[string]*mockGeocoder{
		"provider error":    {err: errors.New("timeout")},
		"address not found": {result: GeoResult{Valid: false}},
	} {
		pricer := NewPricer(geo)
		o := deliveryOrder(13.80)

		quote := pricer.Quote(context.Background(), o)

		if quote.Fee != 0 || quote.DistanceKm != 0 || quote.FeeWaived {
			t.Errorf("%s: expected the zero-fee quote, got %+v", name, quote)
		}
		if quote.AddressVerified {
			t.Errorf("%s: address must not be verified", name)
		}
		if quote.FormattedAddress != o.DeliveryAddress {
			t.Errorf("%s: formatted address should echo the raw one, got %q", name, quote.FormattedAddress)
		}
	}
}

func TestHaversineKm(t *testing.T) {
	if d := HaversineKm(RestaurantLat, RestaurantLon, RestaurantLat, RestaurantLon); d != 0 {
		t.Errorf("distance to self must be 0, got %f", d)
	}

	// One degree of latitude is about 111.19 km.
	d := HaversineKm(48.0, 1.0, 49.0, 1.0)
	if math.Abs(d-111.19) > 0.1 {
		t.Errorf("expected ≈111.19 km per degree of latitude, got %f", d)
	}

	// Symmetric.
	d2 := HaversineKm(49.0, 1.0, 48.0, 1.0)
	if math.Abs(d-d2) > 1e-9 {
		t.Errorf("distance must be symmetric: %f vs %f", d, d2)
	}
}
