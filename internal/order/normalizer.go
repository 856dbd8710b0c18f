package order

import (
	"log"
	"math"
	"strings"

	"github.com/KarmaGirafe/chicken-hot-system/internal/llm"
	"github.com/KarmaGirafe/chicken-hot-system/internal/menu"
)

// Words that mark a call as an order when extraction is unavailable.
var orderWords = []string{"prendre", "commander", "commande", "voudrai", "menu", "curry", "burger"}

// Normalize repairs a raw extraction into a canonical Order. It never
// fails: a nil raw (extractor down or unparseable) falls back to
// keyword matching over the transcript, and every malformed field gets
// a typed default. The returned Order always has at least one item and
// a derived, non-negative subtotal.
func Normalize(raw *llm.RawOrder, transcript string, catalog *menu.Catalog) Order {
	if raw == nil {
		return keywordFallback(transcript, catalog)
	}

	o := Order{
		CallType:    callTypeOf(raw.CallType, transcript),
		ServiceType: serviceTypeOf(raw.ServiceType, transcript),
		Notes:       raw.Notes,
	}

	for _, it := range raw.Items {
		o.Items = append(o.Items, normalizeItem(it, catalog))
	}
	if len(o.Items) == 0 {
		o.Items = []LineItem{placeholderItem()}
	}

	for i := range o.Items {
		o.Subtotal += o.Items[i].TotalPrice
	}
	o.Subtotal = round2(o.Subtotal)

	if raw.Total > 0 && math.Abs(raw.Total-o.Subtotal) > 0.01 {
		log.Printf("normalize: declared total %.2f differs from computed subtotal %.2f", raw.Total, o.Subtotal)
	}

	if o.ServiceType == ServiceDelivery {
		o.DeliveryAddress = strings.TrimSpace(raw.Address)
	}

	return o
}

// normalizeItem coerces one extracted line. A missing price is resolved
// from the catalog; an unknown item with no price stays at 0 rather
// than failing the call.
func normalizeItem(it llm.RawItem, catalog *menu.Catalog) LineItem {
	name := strings.TrimSpace(it.Name)
	if name == "" {
		name = "item"
	}

	qty := it.Quantity
	if qty < 1 {
		qty = 1
	}

	price := it.Price
	if price <= 0 {
		if canonical, entry, ok := catalog.Find(name); ok {
			if wantsSeul(name) {
				price = entry.Seul
				name = canonical + " seul"
			} else {
				price = entry.DefaultPrice()
				name = displayName(canonical, entry)
			}
		} else {
			log.Printf("normalize: unknown item %q, keeping at price 0", name)
			price = 0
		}
	}

	return LineItem{
		Name:       name,
		Quantity:   qty,
		UnitPrice:  round2(price),
		TotalPrice: round2(price * float64(qty)),
	}
}

// keywordFallback builds an order directly from the transcript when the
// extractor is unreachable or returned garbage. Every catalog mention
// becomes one line at quantity 1 and the default (bundled) price.
func keywordFallback(transcript string, catalog *menu.Catalog) Order {
	o := Order{
		CallType:    callTypeOf("", transcript),
		ServiceType: serviceTypeOf("", transcript),
		Notes:       "analyse simple (extraction indisponible)",
	}

	for _, name := range catalog.ScanTranscript(transcript) {
		entry, _ := catalog.Get(name)
		price := entry.DefaultPrice()
		o.Items = append(o.Items, LineItem{
			Name:       displayName(name, entry),
			Quantity:   1,
			UnitPrice:  price,
			TotalPrice: price,
		})
		o.Subtotal += price
	}
	o.Subtotal = round2(o.Subtotal)

	if len(o.Items) == 0 {
		o.Items = []LineItem{placeholderItem()}
	} else {
		o.CallType = CallOrder
	}

	return o
}

// displayName prefixes menu-priced items so the kitchen sees "Menu
// Curry", not a bare "Curry". Flat-priced items keep their name.
func displayName(canonical string, e menu.Entry) string {
	if e.HasMenu() {
		return "Menu " + canonical
	}
	return canonical
}

func wantsSeul(label string) bool {
	return strings.Contains(strings.ToLower(label), "seul")
}

func placeholderItem() LineItem {
	return LineItem{Name: "unspecified item", Quantity: 1, UnitPrice: 0, TotalPrice: 0}
}

// callTypeOf trusts a recognized extractor value and otherwise looks
// for ordering vocabulary in the transcript.
func callTypeOf(extracted string, transcript string) CallType {
	switch strings.ToLower(strings.TrimSpace(extracted)) {
	case "commande", string(CallOrder):
		return CallOrder
	case "renseignement", string(CallInquiry):
		return CallInquiry
	}

	lower := strings.ToLower(transcript)
	for _, w := range orderWords {
		if strings.Contains(lower, w) {
			return CallOrder
		}
	}
	return CallInquiry
}

// serviceTypeOf trusts a recognized extractor value and otherwise
// detects cues in the transcript. Priority: delivery > dine-in >
// takeout, first match wins.
func serviceTypeOf(extracted string, transcript string) ServiceType {
	switch strings.ToLower(strings.TrimSpace(extracted)) {
	case "sur place", string(ServiceDineIn):
		return ServiceDineIn
	case "à emporter", "a emporter", "emporter", string(ServiceTakeout):
		return ServiceTakeout
	case "livraison", string(ServiceDelivery):
		return ServiceDelivery
	case "non spécifié", "non specifie", string(ServiceUnspecified):
		return ServiceUnspecified
	}

	lower := strings.ToLower(transcript)
	switch {
	case strings.Contains(lower, "livr"):
		return ServiceDelivery
	case strings.Contains(lower, "sur place"):
		return ServiceDineIn
	case strings.Contains(lower, "emporter"):
		return ServiceTakeout
	}
	return ServiceUnspecified
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
