// Package food ищет продукты в OpenFoodFacts и отдаёт калорийность
// на 100 г. Успешные ответы кэшируются в sqlite.
package food

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"telegram-nutrition-bot/internal/models"
	"telegram-nutrition-bot/internal/storage"
)

const apiURL = "https://world.openfoodfacts.org"

// Client implements product lookup over the OpenFoodFacts HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *storage.DB // nil — без кэша
}

type productResponse struct {
	Product struct {
		ProductName string `json:"product_name"`
		Nutriments  struct {
			EnergyKcal100g *float64 `json:"energy-kcal_100g"`
		} `json:"nutriments"`
	} `json:"product"`
}

func NewClient(cache *storage.DB) *Client {
	return &Client{
		baseURL:    apiURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      cache,
	}
}

// Find returns the product for the query, or (nil, nil) when nothing
// usable was found. Transport errors are returned as errors; the caller
// treats them as not-found.
func (c *Client) Find(query string) (*models.Product, error) {
	if c.cache != nil {
		if p, err := c.cache.GetProduct(query); err == nil && p != nil {
			return p, nil
		}
	}

	resp, err := c.httpClient.Get(fmt.Sprintf("%s/api/v0/product/%s.json", c.baseURL, url.PathEscape(query)))
	if err != nil {
		return nil, fmt.Errorf("запрос к openfoodfacts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	var pr productResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, fmt.Errorf("разбор ответа openfoodfacts: %w", err)
	}
	if pr.Product.Nutriments.EnergyKcal100g == nil {
		return nil, nil
	}

	name := pr.Product.ProductName
	if name == "" {
		name = "Неизвестный продукт"
	}
	p := &models.Product{Name: name, KcalPer100g: *pr.Product.Nutriments.EnergyKcal100g}

	if c.cache != nil {
		if err := c.cache.SaveProduct(query, p); err != nil {
			log.Println("не удалось сохранить продукт в кэш:", err)
		}
	}
	return p, nil
}
