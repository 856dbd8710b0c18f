package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

type OpenAIClient struct {
	apiKey string
	model  string
	apiURL string
}

func NewOpenAIClient() *OpenAIClient {
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o"
	}
	return &OpenAIClient{
		apiKey: os.Getenv("OPENAI_API_KEY"),
		model:  model,
		apiURL: "https://api.openai.com/v1/chat/completions",
	}
}

// ExtractOrder sends the transcript and menu context to OpenAI and
// returns the coerced RawOrder.
func (o *OpenAIClient) ExtractOrder(
	ctx context.Context,
	transcript string,
	menuContext string,
) (*RawOrder, error) {

	if o.apiKey == "" {
		return nil, errors.New("missing OPENAI_API_KEY")
	}
	if transcript == "" {
		return nil, errors.New("empty transcript")
	}

	payload := map[string]any{
		"model": o.model,
		"messages": []map[string]string{
			{
				"role":    "system",
				"content": "Tu es un expert en extraction de données de commandes de restaurant. Tu réponds UNIQUEMENT en JSON strict, sans texte supplémentaire.",
			},
			{
				"role":    "user",
				"content": BuildExtractionPrompt(transcript, menuContext),
			},
		},
		"temperature": 0.1,
		"max_tokens":  500,
		"response_format": map[string]string{
			"type": "json_object",
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		o.apiURL,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+o.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openai api error: %s", string(raw))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return nil, errors.New("empty openai response")
	}

	return ParseRawOrder(result.Choices[0].Message.Content)
}
