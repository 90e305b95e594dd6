// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks product catalog input against its business rules
// before it reaches the service or storage layers.
//
// Validator is the single abstraction; ProductValidator implements it on top
// of go-playground/validator struct tags. Every failure is reported as a
// *ValidationError carrying one entry per offending field, so transport
// layers can render all problems in a single response.
package validators

import "context"

// Validator validates an arbitrary value and optionally restricts the check
// to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
