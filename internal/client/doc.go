// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the catalog server.
//
// Each invocation runs one command (list, create, version or health)
// through an [adapter.CatalogAdapter] and renders the result to the
// configured writer. Product pages are rendered as lipgloss tables.
package client
