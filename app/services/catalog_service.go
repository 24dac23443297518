package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

type ProductRating struct {
	Rate  decimal.Decimal `json:"rate"`
	Count int             `json:"count"`
}

// ProductData is the catalog's view of a product. Numeric fields the catalog
// omits decode to zero; the cart treats that as "weighs/costs nothing" rather
// than an error.
type ProductData struct {
	ID                int             `json:"id"`
	Title             string          `json:"title"`
	Price             decimal.Decimal `json:"price"`
	AdditionalCharges decimal.Decimal `json:"additionalCharges"`
	Category          string          `json:"category"`
	Description       string          `json:"description"`
	WeightGrams       decimal.Decimal `json:"weight_in_grams"`
	Rating            ProductRating   `json:"rating"`
	Image             string          `json:"image"`
}

type DistanceData struct {
	PostalCode int             `json:"postal_code"`
	DistanceKm decimal.Decimal `json:"distance_in_kilometers"`
	Warehouse  string          `json:"warehouse"`
}

type ProductCatalogClient interface {
	GetProduct(ctx context.Context, productID int) (*ProductData, error)
	GetWarehouseDistance(ctx context.Context, postalCode string) (*DistanceData, error)
}

type CatalogService struct {
	client  *http.Client
	baseURL string
}

func NewCatalogService(baseURL string) *CatalogService {
	return &CatalogService{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
	}
}

func (s *CatalogService) GetProduct(ctx context.Context, productID int) (*ProductData, error) {
	endpoint := s.baseURL + "/product/" + strconv.Itoa(productID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create product request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("CatalogService: Error performing request to catalog product API: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("CatalogService: Error reading product API response body: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrInvalidProduct
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("CatalogService: Catalog product API returned non-OK status: %d, Body: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: status %d", ErrCatalogUnavailable, resp.StatusCode)
	}

	var productResponse struct {
		Response *ProductData `json:"response"`
	}
	if err := json.Unmarshal(body, &productResponse); err != nil {
		log.Printf("CatalogService: Error unmarshalling product API response: %v, Raw Body: %s", err, string(body))
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	// The catalog answers 200 with an empty response object for unknown ids.
	if productResponse.Response == nil {
		return nil, ErrInvalidProduct
	}

	return productResponse.Response, nil
}

func (s *CatalogService) GetWarehouseDistance(ctx context.Context, postalCode string) (*DistanceData, error) {
	endpoint := s.baseURL + "/warehouse/distance?postal_code=" + url.QueryEscape(postalCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create warehouse request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("CatalogService: Error performing request to warehouse distance API: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("CatalogService: Error reading warehouse API response body: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("CatalogService: Warehouse distance API returned non-OK status: %d, Body: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: status %d", ErrCatalogUnavailable, resp.StatusCode)
	}

	var distanceResponse struct {
		Response *DistanceData `json:"response"`
	}
	if err := json.Unmarshal(body, &distanceResponse); err != nil {
		log.Printf("CatalogService: Error unmarshalling warehouse API response: %v, Raw Body: %s", err, string(body))
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	if distanceResponse.Response == nil {
		return nil, fmt.Errorf("%w: empty warehouse response", ErrCatalogUnavailable)
	}

	return distanceResponse.Response, nil
}
