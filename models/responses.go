// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AccessTokenResponse is returned by the signup and signin endpoints.
type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
}

// ErrorResponse is the body written for every non-2xx API response.
type ErrorResponse struct {
	// StatusCode repeats the HTTP status code of the response.
	StatusCode int `json:"statusCode"`

	// Message is a short human-readable description of the failure.
	Message string `json:"message"`

	// Error is the standard HTTP status text (e.g. "Forbidden").
	Error string `json:"error"`

	// Errors lists field-level validation failures, if any.
	Errors []string `json:"errors,omitempty"`
}
