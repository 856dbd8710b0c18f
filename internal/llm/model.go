package llm

// RawOrder is the untrusted extraction result after per-field coercion.
// Every field may still be semantically wrong (delivery with an empty
// address, prices that do not add up); the normalizer repairs that.
type RawOrder struct {
	CallType    string    // "commande" | "renseignement" | anything else
	ServiceType string    // "Sur place" | "À emporter" | "Livraison" | "Non spécifié" | junk
	Items       []RawItem // may be empty
	Address     string    // delivery address as spoken, may be empty
	Total       float64   // extractor's declared total, never trusted
	Notes       string
}

// RawItem is one extracted line before normalization.
type RawItem struct {
	Name     string
	Price    float64 // 0 when the extractor gave none or a non-number
	Quantity int     // 1 when the extractor gave none or a non-number
}
