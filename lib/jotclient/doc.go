// Copyright 2026 The Jotview Authors
// SPDX-License-Identifier: Apache-2.0

// Package jotclient is a typed HTTP client for the jotform service.
//
// The service exposes two endpoints: GET /jotforms returns every
// submitted maintenance form as a JSON array, and POST
// /jotforms/{id}/status records a status change. The client decodes
// into [lib/schema/jotform] types with bounded response reads;
// non-2xx responses surface as [*APIError] values that callers can
// classify with [IsNotFound] and [IsTransient].
//
// Construct a [Client] with [NewClient], injecting an HTTP client,
// clock, and logger through [Config] for tests.
package jotclient
