package order

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/KarmaGirafe/chicken-hot-system/internal/llm"
	"github.com/KarmaGirafe/chicken-hot-system/internal/menu"
)

// transcriptLimit bounds what is stored on the record; the full text
// goes to the archive when one is configured.
const transcriptLimit = 2000

// Quoter prices delivery for a normalized order.
type Quoter interface {
	Quote(ctx context.Context, o *Order) DeliveryQuote
}

// Archiver keeps full call transcripts outside the order store.
type Archiver interface {
	ArchiveTranscript(ctx context.Context, callID string, transcript string) error
}

// Result is what the webhook caller gets back for one processed call.
type Result struct {
	Duplicate   bool
	OrderID     string
	CallID      string
	Total       float64
	DeliveryFee float64
}

// Service runs the intake pipeline: extract, normalize, price, persist.
type Service struct {
	repo      Repository
	cache     *CallCache
	extractor llm.Client
	pricer    Quoter
	catalog   *menu.Catalog
	archiver  Archiver // nil when no archive is configured
}

func NewService(
	repo Repository,
	cache *CallCache,
	extractor llm.Client,
	pricer Quoter,
	catalog *menu.Catalog,
	archiver Archiver,
) *Service {
	return &Service{
		repo:      repo,
		cache:     cache,
		extractor: extractor,
		pricer:    pricer,
		catalog:   catalog,
		archiver:  archiver,
	}
}

// ProcessCall handles one webhook delivery end to end. Extraction and
// geocoding failures are absorbed into fallbacks; only a missing
// transcript or a store failure surfaces as an error.
func (s *Service) ProcessCall(ctx context.Context, call WebhookCall) (*Result, error) {
	if call.Transcript == "" {
		return nil, errors.New("no transcript")
	}

	// Duplicate check before any work: cache first, then the store.
	if s.cache.Seen(call.CallID) {
		return &Result{Duplicate: true, CallID: call.CallID}, nil
	}
	exists, err := s.repo.Exists(ctx, call.CallID)
	if err != nil {
		return nil, err
	}
	if exists {
		s.cache.Mark(call.CallID)
		return &Result{Duplicate: true, CallID: call.CallID}, nil
	}

	raw, err := s.extractor.ExtractOrder(ctx, call.Transcript, menu.PromptContext())
	if err != nil {
		log.Printf("extraction failed for call %s, using keyword fallback: %v", call.CallID, err)
		raw = nil
	}

	o := Normalize(raw, call.Transcript, s.catalog)
	quote := s.pricer.Quote(ctx, &o)
	total := round2(o.Subtotal + quote.Fee)

	if s.archiver != nil {
		if err := s.archiver.ArchiveTranscript(ctx, call.CallID, call.Transcript); err != nil {
			log.Printf("transcript archive failed for call %s: %v", call.CallID, err)
		}
	}

	rec := &PersistedOrder{
		CallID:          call.CallID,
		PhoneNumber:     call.FromNumber,
		CallType:        o.CallType,
		ServiceType:     o.ServiceType,
		Items:           o.Items,
		ItemsSummary:    o.ItemsSummary(),
		DeliveryAddress: o.DeliveryAddress,
		Quote:           quote,
		Subtotal:        o.Subtotal,
		Total:           total,
		Notes:           o.Notes,
		Status:          StatusPending,
		RawTranscript:   truncate(call.Transcript, transcriptLimit),
		CreatedAt:       time.Now().UTC(),
	}

	id, err := s.repo.Push(ctx, rec)
	if err != nil {
		return nil, err
	}
	s.cache.Mark(call.CallID)

	log.Printf("📞 call %s persisted as %s: %s (%.2f€)", call.CallID, id, rec.ItemsSummary, total)

	return &Result{
		OrderID:     id,
		CallID:      call.CallID,
		Total:       total,
		DeliveryFee: quote.Fee,
	}, nil
}

// ListOrders returns every stored record for the dashboard poll.
func (s *Service) ListOrders(ctx context.Context) (map[string]PersistedOrder, error) {
	return s.repo.List(ctx)
}

// ErrInvalidStatus is returned for a status outside the known set.
var ErrInvalidStatus = errors.New("unknown status")

// UpdateStatus moves one order through the kitchen workflow.
func (s *Service) UpdateStatus(ctx context.Context, id string, status string) error {
	if !ValidStatus(status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
