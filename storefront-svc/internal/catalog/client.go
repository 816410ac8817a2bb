package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"foodcourt/storefront-svc/internal/domain"
	"foodcourt/storefront-svc/internal/service"

	"go.uber.org/zap"
)

var ErrNotFound = errors.New("catalog record not found")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client reads restaurants and foods from the remote catalog. It does not cache
// and does not retry.
type Client struct {
	baseURL string
	http    HTTPClient
	logger  *zap.Logger
}

func NewClient(baseURL string, httpClient HTTPClient, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger,
	}
}

func (c *Client) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	restaurants := []domain.Restaurant{}
	if err := c.get(ctx, "/restaurants", &restaurants); err != nil {
		return []domain.Restaurant{}, err
	}
	return restaurants, nil
}

func (c *Client) GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	var restaurant domain.Restaurant
	if err := c.get(ctx, "/restaurants/"+strconv.Itoa(id), &restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (c *Client) ListFoods(ctx context.Context) ([]domain.Food, error) {
	foods := []domain.Food{}
	if err := c.get(ctx, "/foods", &foods); err != nil {
		return []domain.Food{}, err
	}
	return foods, nil
}

func (c *Client) GetFood(ctx context.Context, id int) (*domain.Food, error) {
	var food domain.Food
	if err := c.get(ctx, "/foods/"+strconv.Itoa(id), &food); err != nil {
		return nil, err
	}
	return &food, nil
}

// FoodsByRestaurant filters the full food list; the catalog has no server-side filter.
func (c *Client) FoodsByRestaurant(ctx context.Context, restaurantID int) ([]domain.Food, error) {
	foods, err := c.ListFoods(ctx)
	if err != nil {
		return foods, err
	}
	filtered := []domain.Food{}
	for _, food := range foods {
		if food.RestaurantID == restaurantID {
			filtered = append(filtered, food)
		}
	}
	return filtered, nil
}

// SearchRestaurants matches term case-insensitively against the name. An empty
// category or "all" matches every category.
func (c *Client) SearchRestaurants(ctx context.Context, term, category string) ([]domain.Restaurant, error) {
	restaurants, err := c.ListRestaurants(ctx)
	if err != nil {
		return restaurants, err
	}
	term = strings.ToLower(strings.TrimSpace(term))
	matched := []domain.Restaurant{}
	for _, r := range restaurants {
		if term != "" && !strings.Contains(strings.ToLower(r.Name), term) {
			continue
		}
		if category != "" && category != "all" && r.Category != category {
			continue
		}
		matched = append(matched, r)
	}
	return matched, nil
}

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	restaurants, err := c.ListRestaurants(ctx)
	if err != nil {
		return []string{}, err
	}
	seen := map[string]bool{}
	categories := []string{}
	for _, r := range restaurants {
		if r.Category == "" || seen[r.Category] {
			continue
		}
		seen[r.Category] = true
		categories = append(categories, r.Category)
	}
	sort.Strings(categories)
	return categories, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("catalog fetch failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("catalog returned error status", zap.String("path", path), zap.Int("status", resp.StatusCode))
		return fmt.Errorf("fetch %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

var _ service.CatalogClient = (*Client)(nil)
