package menu

import (
	"sort"
	"strings"
)

// Catalog is the static Chicken Hot Dreux price list. It is compiled in,
// loaded once at startup, and never mutated afterwards.
type Catalog struct {
	entries map[string]Entry
	matches []match // alias phrases + canonical names, longest first
}

type match struct {
	phrase string // lowercased phrase searched in transcripts/labels
	item   string // canonical catalog name
}

// NewCatalog builds the full Chicken Hot Dreux catalog.
func NewCatalog() *Catalog {
	entries := map[string]Entry{
		// Naans (wraps)
		"Mixte":      {Seul: 7.50, Menu: 9.50},
		"Spécial":    {Seul: 7.50, Menu: 9.50},
		"Country":    {Seul: 7.50, Menu: 9.50},
		"Classico":   {Seul: 6.90, Menu: 8.90},
		"Classic":    {Seul: 6.90, Menu: 8.90},
		"Curry":      {Seul: 6.90, Menu: 8.90},
		"Royal":      {Seul: 7.50, Menu: 9.50},
		"Oriental":   {Seul: 7.50, Menu: 9.50},
		"RoyalBacon": {Seul: 7.50, Menu: 9.50},
		"DoubleFish": {Seul: 6.50, Menu: 8.50},

		// Chickenburgers
		"Légende":     {Seul: 7.00, Menu: 9.00},
		"Wafelé":      {Seul: 6.50, Menu: 8.50},
		"FiletBurger": {Seul: 5.90, Menu: 7.90},
		"BigBacon":    {Seul: 6.50, Menu: 8.50},
		"BigChicken":  {Seul: 6.50, Menu: 8.50},
		"FiletBBQ":    {Seul: 6.50, Menu: 8.50},

		// Classiqueburgers
		"Fish":      {Seul: 5.30, Menu: 7.30},
		"Cheese":    {Seul: 3.50, Menu: 5.50},
		"BigCheese": {Seul: 4.90, Menu: 6.90},

		// Extras (flat prices)
		"Tenders x3":     {Seul: 3.50},
		"Tenders x7":     {Seul: 6.90},
		"Tenders x14":    {Seul: 12.50},
		"Pilons x3":      {Seul: 4.90},
		"Pilons x5":      {Seul: 7.90},
		"Wings x3":       {Seul: 2.90},
		"Wings x6":       {Seul: 4.90},
		"Wings x10":      {Seul: 8.00},
		"Wings x15":      {Seul: 11.40},
		"Nuggets x6":     {Seul: 4.90},
		"Frites":         {Seul: 1.70},
		"Camembert x6":   {Seul: 4.90},
		"Jalapeños x6":   {Seul: 4.90},
		"MozzaSticks x6": {Seul: 4.90},
		"Cheese Naan":    {Seul: 2.90},

		// Chicken box (avec frites & boisson)
		"Menu Wings x6":    {Seul: 6.90},
		"Menu Wings x10":   {Seul: 10.00},
		"Menu Wings x15":   {Seul: 13.40},
		"Menu Tenders x7":  {Seul: 8.90},
		"Menu Tenders x14": {Seul: 14.50},
		"Menu Pilons x3":   {Seul: 6.90},
		"Menu Pilons x5":   {Seul: 9.90},

		// Family box
		"Menu XXL":     {Seul: 18.50},
		"Menu Friends": {Seul: 27.90},
		"Menu Only":    {Seul: 36.50},
		"Menu Family":  {Seul: 34.90},

		// Menu enfant
		"Menu Enfant": {Seul: 5.90},
	}

	aliases := map[string]string{
		// Quantity-first phrasings heard on calls ("6 wings", "3 tenders")
		"3 wings":       "Wings x3",
		"trois wings":   "Wings x3",
		"6 wings":       "Wings x6",
		"six wings":     "Wings x6",
		"10 wings":      "Wings x10",
		"dix wings":     "Wings x10",
		"15 wings":      "Wings x15",
		"quinze wings":  "Wings x15",
		"3 tenders":     "Tenders x3",
		"trois tenders": "Tenders x3",
		"7 tenders":     "Tenders x7",
		"sept tenders":  "Tenders x7",
		"14 tenders":    "Tenders x14",
		"3 pilons":      "Pilons x3",
		"trois pilons":  "Pilons x3",
		"5 pilons":      "Pilons x5",
		"cinq pilons":   "Pilons x5",
		"6 nuggets":     "Nuggets x6",
		"six nuggets":   "Nuggets x6",

		// Bare extra names default to the smallest portion
		"wings":   "Wings x3",
		"tenders": "Tenders x3",
		"pilons":  "Pilons x3",
		"nuggets": "Nuggets x6",

		// Accent-free and spaced spellings
		"special":      "Spécial",
		"classique":    "Classic",
		"royal bacon":  "RoyalBacon",
		"double fish":  "DoubleFish",
		"legende":      "Légende",
		"wafele":       "Wafelé",
		"filet burger": "FiletBurger",
		"big bacon":    "BigBacon",
		"big chicken":  "BigChicken",
		"filet bbq":    "FiletBBQ",
		"big cheese":   "BigCheese",
		"jalapenos":    "Jalapeños x6",
		"camembert":    "Camembert x6",
		"mozza":        "MozzaSticks x6",
	}

	c := &Catalog{entries: entries}
	for name := range entries {
		c.matches = append(c.matches, match{phrase: strings.ToLower(name), item: name})
	}
	for phrase, item := range aliases {
		c.matches = append(c.matches, match{phrase: phrase, item: item})
	}
	// Longest phrase first so "6 wings" beats "wings" and
	// "cheese naan" beats "cheese".
	sort.Slice(c.matches, func(i, j int) bool {
		if len(c.matches[i].phrase) != len(c.matches[j].phrase) {
			return len(c.matches[i].phrase) > len(c.matches[j].phrase)
		}
		return c.matches[i].phrase < c.matches[j].phrase
	})
	return c
}

// Get returns the entry for an exact canonical name.
func (c *Catalog) Get(name string) (Entry, bool) {
	e, ok := c.entries[name]
	return e, ok
}

// Find resolves a free-form item label ("Menu Curry", "curry seul",
// "6 wings") to a canonical catalog entry. Longest phrase wins.
func (c *Catalog) Find(label string) (string, Entry, bool) {
	lower := strings.ToLower(label)
	for _, m := range c.matches {
		if strings.Contains(lower, m.phrase) {
			return m.item, c.entries[m.item], true
		}
	}
	return "", Entry{}, false
}

// ScanTranscript runs the keyword fallback over a whole transcript and
// returns the canonical names of every item mentioned, in transcript
// order. Each matched span is consumed so "6 wings" does not also match
// the bare "wings" alias.
func (c *Catalog) ScanTranscript(transcript string) []string {
	lower := strings.ToLower(transcript)
	type hit struct {
		pos  int
		item string
	}
	var hits []hit
	for _, m := range c.matches {
		for {
			idx := strings.Index(lower, m.phrase)
			if idx < 0 {
				break
			}
			hits = append(hits, hit{pos: idx, item: m.item})
			lower = lower[:idx] + strings.Repeat(" ", len(m.phrase)) + lower[idx+len(m.phrase):]
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })
	items := make([]string, 0, len(hits))
	for _, h := range hits {
		items = append(items, h.item)
	}
	return items
}
