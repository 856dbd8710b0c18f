package llm

import (
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"strings"
)

// ParseRawOrder turns the model's JSON text into a RawOrder. Each field
// is coerced independently: a wrongly typed field gets its default, it
// never fails the whole parse. Only unparseable JSON is an error.
func ParseRawOrder(text string) (*RawOrder, error) {
	jsonText := extractJSON(text)
	if jsonText == "" {
		return nil, errors.New("no JSON object in extractor output")
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(jsonText), &doc); err != nil {
		return nil, errors.New("invalid extractor JSON")
	}

	raw := &RawOrder{
		CallType:    coerceString(doc["type_appel"]),
		ServiceType: coerceString(doc["type_service"]),
		Address:     coerceString(doc["adresse_livraison"]),
		Total:       coerceFloat(doc["prix_total"], 0),
		Notes:       coerceString(doc["notes"]),
	}

	items, ok := doc["articles"].([]any)
	if !ok && doc["articles"] != nil {
		log.Printf("extractor: articles is %T, dropping", doc["articles"])
	}
	for _, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			log.Printf("extractor: article entry is %T, dropping", it)
			continue
		}
		raw.Items = append(raw.Items, RawItem{
			Name:     coerceString(m["nom"]),
			Price:    coerceFloat(m["prix"], 0),
			Quantity: coerceInt(m["quantite"], 1),
		})
	}

	return raw, nil
}

// extractJSON cuts the outermost {...} out of a text blob; models
// occasionally wrap their JSON in prose or code fences.
func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return ""
	}
	return text[start : end+1]
}

func coerceString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func coerceFloat(v any, def float64) float64 {
	switch n := v.(type) {
	case float64:
		if n < 0 {
			return def
		}
		return n
	case string:
		// "8,90" and "8.90" both show up
		f, err := strconv.ParseFloat(strings.Replace(strings.TrimSpace(n), ",", ".", 1), 64)
		if err != nil || f < 0 {
			return def
		}
		return f
	default:
		return def
	}
}

func coerceInt(v any, def int) int {
	switch n := v.(type) {
	case float64:
		if n < 1 {
			return def
		}
		return int(n)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil || i < 1 {
			return def
		}
		return i
	default:
		return def
	}
}
