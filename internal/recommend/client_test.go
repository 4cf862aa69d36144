package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kannangrocery/storefront/internal/catalog"
	"github.com/kannangrocery/storefront/internal/model"
)

func chatCompletion(content string) string {
	body, _ := json.Marshal(map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	})
	return string(body)
}

func testClient(t *testing.T, handler http.HandlerFunc) (*Client, *catalog.Catalog) {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Model:   "test-model",
	}, cat)
	return client, cat
}

func TestRecommend_ResolvesProducts(t *testing.T) {
	var client *Client
	var cat *catalog.Catalog
	client, cat = testClient(t, func(w http.ResponseWriter, r *http.Request) {
		products := cat.Products()
		content := fmt.Sprintf(`{"recommendations": [
			{"productId": %q, "reason": "Goes well with dal."},
			{"productId": %q, "reason": "A breakfast staple."}
		]}`, products[0].ID, products[1].ID)
		fmt.Fprint(w, chatCompletion(content))
	})

	recs, err := client.Recommend(context.Background(), nil, nil, model.LanguageEnglish)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, cat.Products()[0].ID, recs[0].Product.ID)
	assert.Equal(t, "Goes well with dal.", recs[0].Reason)
}

func TestRecommend_DropsUnknownProductIDs(t *testing.T) {
	var client *Client
	var cat *catalog.Catalog
	client, cat = testClient(t, func(w http.ResponseWriter, r *http.Request) {
		content := fmt.Sprintf(`{"recommendations": [
			{"productId": "no-such-product", "reason": "Invented by the model."},
			{"productId": %q, "reason": "Real product."}
		]}`, cat.Products()[0].ID)
		fmt.Fprint(w, chatCompletion(content))
	})

	recs, err := client.Recommend(context.Background(), nil, nil, model.LanguageEnglish)
	require.NoError(t, err)
	require.Len(t, recs, 1, "unknown ids must be dropped, the rest kept")
	assert.Equal(t, cat.Products()[0].ID, recs[0].Product.ID)
}

func TestRecommend_CapsSuggestions(t *testing.T) {
	var client *Client
	var cat *catalog.Catalog
	client, cat = testClient(t, func(w http.ResponseWriter, r *http.Request) {
		var entries []string
		for _, p := range cat.Products()[:MaxSuggestions+2] {
			entries = append(entries, fmt.Sprintf(`{"productId": %q, "reason": "x"}`, p.ID))
		}
		content := fmt.Sprintf(`{"recommendations": [%s]}`, strings.Join(entries, ","))
		fmt.Fprint(w, chatCompletion(content))
	})

	recs, err := client.Recommend(context.Background(), nil, nil, model.LanguageEnglish)
	require.NoError(t, err)
	assert.Len(t, recs, MaxSuggestions)
}

func TestRecommend_FencedJSON(t *testing.T) {
	var client *Client
	var cat *catalog.Catalog
	client, cat = testClient(t, func(w http.ResponseWriter, r *http.Request) {
		content := fmt.Sprintf("```json\n{\"recommendations\": [{\"productId\": %q, \"reason\": \"ok\"}]}\n```", cat.Products()[0].ID)
		fmt.Fprint(w, chatCompletion(content))
	})

	recs, err := client.Recommend(context.Background(), nil, nil, model.LanguageEnglish)
	require.NoError(t, err)
	require.Len(t, recs, 1)
}

func TestRecommend_PromptContents(t *testing.T) {
	var gotBody chatRequest
	var client *Client
	var cat *catalog.Catalog
	client, cat = testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		fmt.Fprint(w, chatCompletion(`{"recommendations": []}`))
	})

	cart := []model.CartItem{{Product: cat.Products()[0], Quantity: 2}}
	viewed := []model.Product{cat.Products()[1]}

	_, err := client.Recommend(context.Background(), cart, viewed, model.LanguageTamil)
	require.NoError(t, err)

	require.Len(t, gotBody.Messages, 1)
	prompt := gotBody.Messages[0].Content
	assert.Contains(t, prompt, cat.Products()[0].Name.Default)
	assert.Contains(t, prompt, cat.Products()[1].Name.Default)
	assert.Contains(t, prompt, "Tamil")
	assert.Contains(t, prompt, "Do not recommend items already in the cart")
	assert.Equal(t, "test-model", gotBody.Model)
}

func TestRecommend_ServerError(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Recommend(context.Background(), nil, nil, model.LanguageEnglish)
	assert.Error(t, err)
}

func TestRecommend_MalformedContent(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chatCompletion("Sorry, I cannot help with that."))
	})

	_, err := client.Recommend(context.Background(), nil, nil, model.LanguageEnglish)
	assert.Error(t, err)
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
	}

	for _, test := range tests {
		if got := stripCodeFence(test.input); got != test.expected {
			t.Errorf("stripCodeFence(%q) = %q, expected %q", test.input, got, test.expected)
		}
	}
}
