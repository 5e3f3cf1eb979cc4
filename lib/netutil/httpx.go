// Copyright 2026 The Jotview Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil provides bounded HTTP response reading. Every body
// read in the repo goes through these helpers so a misbehaving server
// cannot exhaust memory; the limit is generous enough that legitimate
// jotform lists never notice it.
package netutil

import (
	"encoding/json"
	"fmt"
	"io"
)

// MaxResponseSize is the bound on response body reads: 32 MB. A
// jotform list is a few kilobytes per entry; the limit only matters
// when the server sends something pathological.
const MaxResponseSize int64 = 32 << 20

// ReadResponse reads a response body up to MaxResponseSize bytes. Use
// instead of io.ReadAll when reading HTTP response bodies.
func ReadResponse(body io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(body, MaxResponseSize))
}

// DecodeResponse reads a response body (up to MaxResponseSize bytes)
// and JSON-decodes it into v.
func DecodeResponse(body io.Reader, v any) error {
	data, err := io.ReadAll(io.LimitReader(body, MaxResponseSize))
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	return json.Unmarshal(data, v)
}

// ErrorBody reads an HTTP error response body for diagnostic
// messages. Read errors are ignored; a partial or empty body is
// still useful in an error message. The result is trimmed to one
// line so it can sit inside an error string.
func ErrorBody(body io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(body, maxErrorBodySize))
	for i, b := range data {
		if b == '\n' || b == '\r' {
			return string(data[:i])
		}
	}
	return string(data)
}

// maxErrorBodySize bounds ErrorBody reads. Error bodies end up inside
// log lines and error strings, so anything past a few kilobytes is
// noise.
const maxErrorBodySize int64 = 8 << 10
