package llm

import (
	"context"
)

// Client extracts a raw order from a call transcript.
type Client interface {
	ExtractOrder(ctx context.Context, transcript string, menuContext string) (*RawOrder, error)
}
