// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-bookmarks server handlers, middleware and the API client.
//
// All Msg* constants are human-readable message strings written into the
// "message" field of error response bodies. The API client matches on them
// to restore typed errors, so they are part of the wire contract.
package app

const (
	// MsgValidationFailed is returned when the request body cannot be
	// decoded or fails field validation. Field details go into "errors".
	MsgValidationFailed = "Validation failed"

	// MsgInvalidBookmarkID is returned when the {id} path parameter is not a
	// positive integer.
	MsgInvalidBookmarkID = "Invalid bookmark id"

	// MsgCredentialsTaken is returned by signup and profile edits when the
	// email already belongs to another account.
	MsgCredentialsTaken = "Credentials taken"

	// MsgCredentialsIncorrect is returned by signin for an unknown email or
	// a wrong password. Both cases share the message.
	MsgCredentialsIncorrect = "Credentials incorrect"

	// MsgAccessDenied is returned when the caller edits or deletes a
	// bookmark that is missing or owned by someone else.
	MsgAccessDenied = "Access to resource denied"

	// MsgUnauthorized is returned when the bearer token is missing or
	// malformed, or its user no longer exists.
	MsgUnauthorized = "Unauthorized"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "Token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token cannot
	// be verified (e.g. wrong signature or issuer).
	MsgTokenIsExpiredOrInvalid = "Token is expired or invalid"

	// MsgNotFound is returned when a bookmark read by id finds nothing the
	// caller owns, and for unknown routes.
	MsgNotFound = "Not Found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"
)
