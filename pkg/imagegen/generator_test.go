package imagegen_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/florista/storefront/pkg/imagegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	t.Run("Base Only", func(t *testing.T) {
		prompt := imagegen.BuildPrompt(imagegen.Request{})

		assert.Equal(t, "Beautiful flower bouquet, professional photography, white background", prompt)
	})

	t.Run("With Flowers", func(t *testing.T) {
		prompt := imagegen.BuildPrompt(imagegen.Request{FlowerNames: []string{"Red Rose", "Lily"}})

		assert.Equal(t, "Beautiful flower bouquet, professional photography, white background, flowers: Red Rose, Lily", prompt)
	})

	t.Run("With Flowers And Style", func(t *testing.T) {
		prompt := imagegen.BuildPrompt(imagegen.Request{Prompt: "romantic, pastel tones", FlowerNames: []string{"Red Rose"}})

		assert.Equal(t, "Beautiful flower bouquet, professional photography, white background, flowers: Red Rose, style: romantic, pastel tones", prompt)
	})
}

func TestStaticGenerator(t *testing.T) {
	g := imagegen.NewStaticGenerator("/images/preview.jpg")

	first, err := g.Generate(context.Background(), imagegen.Request{FlowerNames: []string{"Lily"}})
	require.NoError(t, err)

	second, err := g.Generate(context.Background(), imagegen.Request{Prompt: "different input"})
	require.NoError(t, err)

	assert.Equal(t, "/images/preview.jpg", first)
	assert.Equal(t, first, second)
}

func TestFluxClient(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "Key test-key", r.Header.Get("Authorization"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Contains(t, body["prompt"], "flowers: Red Rose")
			assert.Equal(t, "square_hd", body["image_size"])

			json.NewEncoder(w).Encode(map[string]any{
				"images": []map[string]string{{"url": "https://img.example/bouquet.jpg"}},
			})
		}))
		defer server.Close()

		client := imagegen.NewFluxClient(server.URL, "test-key", time.Second)

		// Act
		url, err := client.Generate(context.Background(), imagegen.Request{FlowerNames: []string{"Red Rose"}})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "https://img.example/bouquet.jpg", url)
	})

	t.Run("Failure - Upstream Error Status", func(t *testing.T) {
		// Arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := imagegen.NewFluxClient(server.URL, "test-key", time.Second)

		// Act
		url, err := client.Generate(context.Background(), imagegen.Request{FlowerNames: []string{"Red Rose"}})

		// Assert
		assert.Empty(t, url)
		assert.ErrorContains(t, err, "status 429")
	})

	t.Run("Failure - No Image In Response", func(t *testing.T) {
		// Arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"images": []map[string]string{}})
		}))
		defer server.Close()

		client := imagegen.NewFluxClient(server.URL, "test-key", time.Second)

		// Act
		url, err := client.Generate(context.Background(), imagegen.Request{FlowerNames: []string{"Red Rose"}})

		// Assert
		assert.Empty(t, url)
		assert.ErrorContains(t, err, "no image generated")
	})
}
