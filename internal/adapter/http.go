package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-product-catalog/internal/config"
	"github.com/MKhiriev/go-product-catalog/internal/logger"
	"github.com/MKhiriev/go-product-catalog/internal/utils"
	"github.com/MKhiriev/go-product-catalog/models"
)

const (
	productsPath = "/api/products"
	versionPath  = "/api/version"
	healthPath   = "/healthz"
)

type httpCatalogAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPCatalogAdapter constructs an HTTP/REST implementation of
// [CatalogAdapter]. The base URL comes from adapterCfg.HTTPAddress; a
// missing scheme defaults to http.
func NewHTTPCatalogAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (CatalogAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpCatalogAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpCatalogAdapter) ListProducts(ctx context.Context, page, perPage int64) (models.ProductPage, error) {
	var result models.ProductPage

	req := h.client.R().
		SetContext(ctx).
		SetResult(&result)
	if page != 0 {
		req.SetQueryParam("page", strconv.FormatInt(page, 10))
	}
	if perPage != 0 {
		req.SetQueryParam("per_page", strconv.FormatInt(perPage, 10))
	}

	resp, err := req.Get(productsPath)
	if err != nil {
		return models.ProductPage{}, fmt.Errorf("list products request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProductPage{}, err
	}

	h.logger.Debug().
		Int64("page", result.Page).
		Int("objects", len(result.Objects)).
		Msg("products page received")

	return result, nil
}

func (h *httpCatalogAdapter) CreateProduct(ctx context.Context, input models.ProductInput) (models.Product, error) {
	var created models.Product

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		SetResult(&created).
		Post(productsPath)
	if err != nil {
		return models.Product{}, fmt.Errorf("create product request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Product{}, err
	}

	return created, nil
}

func (h *httpCatalogAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpCatalogAdapter) Health(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(healthPath)
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}

	return mapHTTPError(resp)
}
