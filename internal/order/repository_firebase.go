package order

import (
	"context"
	"encoding/json"
	"log"

	"github.com/KarmaGirafe/chicken-hot-system/internal/db"
)

const firebaseOrdersPath = "orders"

// FirebaseRepository stores orders in a Firebase Realtime Database
// under /orders, keyed by Firebase push ids.
type FirebaseRepository struct {
	client *db.FirebaseClient
}

func NewFirebaseRepository(client *db.FirebaseClient) *FirebaseRepository {
	return &FirebaseRepository{client: client}
}

func (r *FirebaseRepository) Push(ctx context.Context, rec *PersistedOrder) (string, error) {
	return r.client.Push(ctx, firebaseOrdersPath, rec)
}

// Exists scans all stored records for the call id. Linear, fine at
// this order volume.
func (r *FirebaseRepository) Exists(ctx context.Context, callID string) (bool, error) {
	records, err := r.client.GetAll(ctx, firebaseOrdersPath)
	if err != nil {
		return false, err
	}

	for id, raw := range records {
		var probe struct {
			CallID string `json:"call_id"`
		}
		if err := json.Unmarshal(raw, &probe); err != nil {
			log.Printf("firebase: skipping unreadable record %s: %v", id, err)
			continue
		}
		if probe.CallID == callID {
			return true, nil
		}
	}
	return false, nil
}

func (r *FirebaseRepository) List(ctx context.Context) (map[string]PersistedOrder, error) {
	records, err := r.client.GetAll(ctx, firebaseOrdersPath)
	if err != nil {
		return nil, err
	}

	orders := make(map[string]PersistedOrder, len(records))
	for id, raw := range records {
		var rec PersistedOrder
		if err := json.Unmarshal(raw, &rec); err != nil {
			log.Printf("firebase: skipping unreadable record %s: %v", id, err)
			continue
		}
		orders[id] = rec
	}
	return orders, nil
}

func (r *FirebaseRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	var probe struct {
		CallID string `json:"call_id"`
	}
	found, err := r.client.Get(ctx, firebaseOrdersPath, id, &probe)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}

	return r.client.Update(ctx, firebaseOrdersPath, id, map[string]any{
		"status": status,
	})
}
