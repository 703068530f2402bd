// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"fmt"
	"strings"
)

// Scheme names one of the four authentication transports.
type Scheme string

// Schemes, in the order connection validation reports them.
const (
	SchemePath   Scheme = "path"
	SchemeBearer Scheme = "bearer"
	SchemeAPIKey Scheme = "api-key"
	SchemeQuery  Scheme = "query"
)

// Schemes lists every scheme in reporting order.
var Schemes = []Scheme{SchemePath, SchemeBearer, SchemeAPIKey, SchemeQuery}

// String implements [fmt.Stringer].
func (s Scheme) String() string {
	return string(s)
}

// Description returns a human readable name for the scheme.
func (s Scheme) Description() string {
	switch s {
	case SchemePath:
		return "Token URL"
	case SchemeBearer:
		return "Bearer token"
	case SchemeAPIKey:
		return "X-API-KEY header"
	case SchemeQuery:
		return "Query parameter"
	default:
		return string(s)
	}
}

// ParseScheme parses a scheme name. Matching is case-insensitive and accepts a few aliases.
func ParseScheme(s string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "path", "token", "url", "":
		return SchemePath, nil
	case "bearer":
		return SchemeBearer, nil
	case "api-key", "apikey", "x-api-key", "header":
		return SchemeAPIKey, nil
	case "query", "query-param":
		return SchemeQuery, nil
	default:
		return "", fmt.Errorf("unknown auth scheme %q (want path, bearer, api-key or query)", s)
	}
}

// Set implements [github.com/spf13/pflag.Value].
func (s *Scheme) Set(v string) error {
	parsed, err := ParseScheme(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Type implements [github.com/spf13/pflag.Value].
func (s *Scheme) Type() string {
	return "scheme"
}
