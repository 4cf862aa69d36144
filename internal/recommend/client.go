package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/kannangrocery/storefront/internal/catalog"
	"github.com/kannangrocery/storefront/internal/model"
)

// MaxSuggestions is the number of products the assistant is asked for
const MaxSuggestions = 3

// DefaultHTTPTimeout bounds a single recommendation request
const DefaultHTTPTimeout = 30 * time.Second

// ClientConfig configures the chat-completions endpoint
type ClientConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client asks an OpenAI-compatible chat-completions API for product
// suggestions and resolves the returned ids against the catalog.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	catalog    *catalog.Catalog
}

// NewClient creates a recommendation client over the given catalog
func NewClient(cfg ClientConfig, cat *catalog.Catalog) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: timeout},
		catalog:    cat,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type suggestionPayload struct {
	Recommendations []struct {
		ProductID string `json:"productId"`
		Reason    string `json:"reason"`
	} `json:"recommendations"`
}

type catalogEntry struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// Recommend implements Recommender. Returned ids that do not resolve against
// the catalog are dropped silently; transport and parsing problems are
// returned as errors for the caller to swallow.
func (c *Client) Recommend(ctx context.Context, cart []model.CartItem, viewed []model.Product, lang model.Language) ([]model.Recommendation, error) {
	prompt, err := c.buildPrompt(cart, viewed, lang)
	if err != nil {
		return nil, err
	}

	content, err := c.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var payload suggestionPayload
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse suggestions: %w", err)
	}

	var recommendations []model.Recommendation
	for _, entry := range payload.Recommendations {
		product, exists := c.catalog.FindByID(entry.ProductID)
		if !exists {
			log.Printf("Dropping suggestion with unknown product id: %s", entry.ProductID)
			continue
		}
		recommendations = append(recommendations, model.Recommendation{
			Product: product,
			Reason:  strings.TrimSpace(entry.Reason),
		})
		if len(recommendations) == MaxSuggestions {
			break
		}
	}

	return recommendations, nil
}

// buildPrompt assembles the shopping-assistant prompt with the cart, the
// viewed items, and a catalog summary the model picks from.
func (c *Client) buildPrompt(cart []model.CartItem, viewed []model.Product, lang model.Language) (string, error) {
	cartNames := make([]string, 0, len(cart))
	for _, item := range cart {
		cartNames = append(cartNames, item.Product.Name.Default)
	}
	viewedNames := make([]string, 0, len(viewed))
	for _, p := range viewed {
		viewedNames = append(viewedNames, p.Name.Default)
	}

	summary := make([]catalogEntry, 0, c.catalog.Len())
	for _, p := range c.catalog.Products() {
		summary = append(summary, catalogEntry{
			ID:       p.ID,
			Name:     p.Name.Default,
			Category: p.Category.Default,
			Tags:     p.Tags,
		})
	}
	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		return "", fmt.Errorf("failed to encode catalog summary: %w", err)
	}

	langInstruction := "Provide the 'reason' in English."
	if lang == model.LanguageTamil {
		langInstruction = "Provide the 'reason' strictly in Tamil language."
	}

	var b strings.Builder
	b.WriteString("You are an expert AI shopping assistant for an Indian grocery store.\n\n")
	b.WriteString("Context:\n")
	fmt.Fprintf(&b, "- The user has these items in their cart: [%s]\n", strings.Join(cartNames, ", "))
	fmt.Fprintf(&b, "- The user has recently viewed these items: [%s]\n\n", strings.Join(viewedNames, ", "))
	b.WriteString("Task:\n")
	fmt.Fprintf(&b, "- Select exactly %d products from the provided catalog that would best complement the user's cooking needs (e.g., if they bought dal, suggest ghee or spices).\n", MaxSuggestions)
	b.WriteString("- Do not recommend items already in the cart.\n")
	fmt.Fprintf(&b, "- %s\n", langInstruction)
	b.WriteString("- Provide a short, helpful reason for each recommendation (max 1 sentence).\n")
	b.WriteString("- Respond with JSON only, in the form {\"recommendations\": [{\"productId\": string, \"reason\": string}]}.\n\n")
	fmt.Fprintf(&b, "Catalog (JSON format):\n%s\n", summaryJSON)

	return b.String(), nil
}

// complete performs the chat-completions call and returns the message content
func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("invalid response structure: no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}

// stripCodeFence removes a surrounding markdown code fence, which some models
// wrap around JSON output despite instructions.
func stripCodeFence(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
