// Package http implements the REST transport of the product catalog.
//
// It wires the chi route table for the product collection together with the
// version, health, index and metrics endpoints. Request tracing, access
// logging, response compression, CORS and per-request timeouts are applied
// here before requests reach the service layer.
package http
