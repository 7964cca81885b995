// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoUserInContext is returned by protected handlers reached without the
	// auth middleware having stored a user id.
	ErrNoUserInContext = errors.New("no authenticated user in request context")
)

// unauthorizedMessage is the body of every 401 produced by token checks.
// Expired and malformed tokens are not told apart.
const unauthorizedMessage = "invalid or expired token"
