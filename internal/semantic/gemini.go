package semantic

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// defaultEmbeddingModel is the Gemini embedding model used for similarity.
const defaultEmbeddingModel = "text-embedding-004"

// GeminiScorer implements Scorer using Gemini text embeddings: both texts
// are embedded and their cosine similarity is scaled to [0,100].
type GeminiScorer struct {
	client *genai.Client
	model  string
}

// NewGeminiScorer creates a scorer backed by the Gemini embedding API.
func NewGeminiScorer(ctx context.Context, apiKey string) (*GeminiScorer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiScorer{client: client, model: defaultEmbeddingModel}, nil
}

// Score embeds both texts and returns their cosine similarity in [0,100].
func (g *GeminiScorer) Score(ctx context.Context, a, b string) (float64, error) {
	va, err := g.embed(ctx, a)
	if err != nil {
		return 0, err
	}
	vb, err := g.embed(ctx, b)
	if err != nil {
		return 0, err
	}

	return toScore(cosine(va, vb)), nil
}

// Close releases resources held by the underlying client.
func (g *GeminiScorer) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

func (g *GeminiScorer) embed(ctx context.Context, text string) ([]float32, error) {
	em := g.client.EmbeddingModel(g.model)
	resp, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("failed to embed content: %w", err)
	}
	if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, fmt.Errorf("empty embedding in response")
	}
	return resp.Embedding.Values, nil
}
