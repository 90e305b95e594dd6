package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-product-catalog/internal/logger"
	"github.com/MKhiriev/go-product-catalog/internal/serializer"
	"github.com/MKhiriev/go-product-catalog/internal/utils"
	"github.com/MKhiriev/go-product-catalog/internal/validators"
)

const (
	pageQueryParam    = "page"
	perPageQueryParam = "per_page"

	maxRequestBodySize = 1 << 20
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	query := r.URL.Query()
	params, err := h.parser.Parse(query.Get(pageQueryParam), query.Get(perPageQueryParam))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	page, err := h.services.ProductService.ListProducts(r.Context(), params)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.metrics.RecordProductsListed(len(page.Objects))

	if _, err = utils.WriteJSON(w, page, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listProducts").Msg("error writing response")
	}
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodySize))
	if err != nil {
		h.writeError(w, r, bodyReadError(err))
		return
	}

	product, err := serializer.DeserializeContext(r.Context(), body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	created, err := h.services.ProductService.CreateProduct(r.Context(), product)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.metrics.RecordProductCreated()

	w.Header().Set("Location", productsPath+"/"+strconv.FormatInt(created.ID, 10))
	if _, err = utils.WriteJSON(w, created, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.createProduct").Msg("error writing response")
	}
}

func bodyReadError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return fmt.Errorf("%w: limit is %d bytes", ErrRequestBodyTooLarge, maxBytesErr.Limit)
	}
	vErr := validators.NewValidationError()
	vErr.Add("body", "could not be read")
	return vErr
}
