// Package config loads, merges and validates the catalog configuration.
//
// Values are collected from three sources and merged field by field; the
// first source that sets a field wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path from CONFIG, -c or -config)
//
// Unset fields then receive defaults and the result is validated.
// The entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the command-line client.
package config
