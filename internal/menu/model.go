package menu

// Entry holds the price variants of one catalog item.
// Menu == 0 means the item only has a flat price (Seul).
type Entry struct {
	Seul float64 `json:"seul"`
	Menu float64 `json:"menu,omitempty"`
}

// HasMenu reports whether the item exists as a bundled menu
// (item + frites + boisson).
func (e Entry) HasMenu() bool {
	return e.Menu > 0
}

// DefaultPrice is the price used when the caller does not say
// "menu" or "seul": the bundled menu price when one exists,
// the flat price otherwise.
func (e Entry) DefaultPrice() float64 {
	if e.Menu > 0 {
		return e.Menu
	}
	return e.Seul
}
