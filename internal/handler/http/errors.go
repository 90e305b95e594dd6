// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrRequestBodyTooLarge is returned when a request body exceeds
	// maxRequestBodySize.
	ErrRequestBodyTooLarge = errors.New("request body too large")

	// ErrStorageUnavailable is reported by the health endpoint when the
	// storage does not answer a ping.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
