package db

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

// FirebaseClient is a minimal Realtime Database REST client. Records
// live under {base}/{path}.json; push ids are assigned by Firebase.
type FirebaseClient struct {
	baseURL string
	client  *http.Client
}

func NewFirebaseClient() (*FirebaseClient, error) {
	baseURL := os.Getenv("FIREBASE_URL")
	if baseURL == "" {
		return nil, errors.New("FIREBASE_URL not set")
	}

	f := &FirebaseClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}

	log.Println("✅ Firebase Realtime Database client ready")
	return f, nil
}

// Push appends a record under path and returns the Firebase-assigned id.
func (f *FirebaseClient) Push(ctx context.Context, path string, v any) (string, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	raw, err := f.do(ctx, http.MethodPost, f.url(path), body)
	if err != nil {
		return "", err
	}

	var result struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}
	if result.Name == "" {
		return "", errors.New("firebase returned no push id")
	}
	return result.Name, nil
}

// GetAll reads every record under path. A missing node comes back as
// JSON null and yields an empty map.
func (f *FirebaseClient) GetAll(ctx context.Context, path string) (map[string]json.RawMessage, error) {
	raw, err := f.do(ctx, http.MethodGet, f.url(path), nil)
	if err != nil {
		return nil, err
	}

	if string(bytes.TrimSpace(raw)) == "null" {
		return map[string]json.RawMessage{}, nil
	}

	var records map[string]json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Get reads one record. The second return is false when the id does
// not exist.
func (f *FirebaseClient) Get(ctx context.Context, path, id string, v any) (bool, error) {
	raw, err := f.do(ctx, http.MethodGet, f.url(path+"/"+id), nil)
	if err != nil {
		return false, err
	}
	if string(bytes.TrimSpace(raw)) == "null" {
		return false, nil
	}
	return true, json.Unmarshal(raw, v)
}

// Update patches fields of one record.
func (f *FirebaseClient) Update(ctx context.Context, path, id string, fields map[string]any) error {
	body, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	_, err = f.do(ctx, http.MethodPatch, f.url(path+"/"+id), body)
	return err
}

func (f *FirebaseClient) url(path string) string {
	return fmt.Sprintf("%s/%s.json", f.baseURL, path)
}

func (f *FirebaseClient) do(ctx context.Context, method, url string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewBuffer(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("firebase error %d: %s", resp.StatusCode, string(raw))
	}
	return raw, nil
}
