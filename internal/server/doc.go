// Package server runs the catalog's HTTP and gRPC transports.
//
// Both listeners are bound before either starts serving. Background runners
// share the transports' lifetime, and a stop signal or the first failure
// shuts everything down gracefully.
package server
