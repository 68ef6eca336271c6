package voyageai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jbeshir/candidate-job-matching/internal/datasources"
)

var _ datasources.Embedder = (*Client)(nil)

const defaultBaseURL = "https://api.voyageai.com/v1"

// Client embeds profile text using the VoyageAI embeddings API.
type Client struct {
	apiKey          string
	model           string
	outputDimension int
	baseURL         string
	httpClient      *http.Client
}

// NewClient creates a new VoyageAI client producing vectors of outputDimension elements.
func NewClient(apiKey, model string, outputDimension int) *Client {
	return &Client{
		apiKey:          apiKey,
		model:           model,
		outputDimension: outputDimension,
		baseURL:         defaultBaseURL,
		httpClient:      http.DefaultClient,
	}
}

type embeddingRequest struct {
	Input           []string `json:"input"`
	Model           string   `json:"model"`
	InputType       string   `json:"input_type"`
	OutputDimension int      `json:"output_dimension"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
		Index     int       `json:"index"`
	} `json:"data"`
}

// EmbedText embeds a candidate or job profile as a document.
func (c *Client) EmbedText(ctx context.Context, text string) ([]float32, error) {
	reqBody := embeddingRequest{
		Input:           []string{text},
		Model:           c.model,
		InputType:       "document",
		OutputDimension: c.outputDimension,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshalling request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/embeddings",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("VoyageAI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result embeddingResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if len(result.Data) == 0 || len(result.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("empty embedding response")
	}

	embedding := result.Data[0].Embedding
	if len(embedding) != c.outputDimension {
		return nil, fmt.Errorf("embedding has %d dimensions, requested %d", len(embedding), c.outputDimension)
	}

	return embedding, nil
}
