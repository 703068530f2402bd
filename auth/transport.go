// Copyright 2025 The Go A2A Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package auth provides the authentication transports understood by an Agent Zero FastA2A
// endpoint.
//
// A token can travel in one of four mutually exclusive ways: inside the URL path, as a bearer
// token, as an API key header or as a query parameter. Each way is a [Transport] that turns the
// instance base URL into the request URL and headers. Transports are chosen when a client is
// configured and never mixed within one request.
package auth

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-a2a/fasta2a"
)

// Header and query names used by the transports.
const (
	HeaderAuthorization = "Authorization"
	HeaderAPIKey        = "X-API-KEY"
	QueryAPIKey         = "api_key"
)

// TokenLength is the length of an Agent Zero A2A token.
const TokenLength = 16

// Transport places a token on an outgoing request.
//
// The set of transports is closed: [PathToken], [BearerHeader], [APIKeyHeader] and [QueryParam].
type Transport interface {
	// Scheme reports which of the four transports this is.
	Scheme() Scheme

	// Resolve returns the request URL for the FastA2A endpoint under base, with suffix appended
	// to the endpoint path, and the headers carrying the credential.
	Resolve(base *url.URL, suffix string) (*url.URL, http.Header)

	sealed()
}

// PathToken embeds the token in the endpoint path: {base}/a2a/t-{token}.
type PathToken struct {
	Token string
}

// BearerHeader sends the token as "Authorization: Bearer {token}" to {base}/a2a.
type BearerHeader struct {
	Token string
}

// APIKeyHeader sends the token as "X-API-KEY: {token}" to {base}/a2a.
type APIKeyHeader struct {
	Token string
}

// QueryParam sends the token as {base}/a2a?api_key={token}.
type QueryParam struct {
	Token string
}

var (
	_ Transport = PathToken{}
	_ Transport = BearerHeader{}
	_ Transport = APIKeyHeader{}
	_ Transport = QueryParam{}
)

// Scheme implements [Transport].
func (PathToken) Scheme() Scheme { return SchemePath }

// Resolve implements [Transport].
func (t PathToken) Resolve(base *url.URL, suffix string) (*url.URL, http.Header) {
	return endpoint(base, fasta2a.EndpointPath+"/"+fasta2a.TokenPathPrefix+t.Token+suffix), http.Header{}
}

func (PathToken) sealed() {}

// Scheme implements [Transport].
func (BearerHeader) Scheme() Scheme { return SchemeBearer }

// Resolve implements [Transport].
func (t BearerHeader) Resolve(base *url.URL, suffix string) (*url.URL, http.Header) {
	h := http.Header{}
	h.Set(HeaderAuthorization, "Bearer "+t.Token)
	return endpoint(base, fasta2a.EndpointPath+suffix), h
}

func (BearerHeader) sealed() {}

// Scheme implements [Transport].
func (APIKeyHeader) Scheme() Scheme { return SchemeAPIKey }

// Resolve implements [Transport].
func (t APIKeyHeader) Resolve(base *url.URL, suffix string) (*url.URL, http.Header) {
	h := http.Header{}
	h.Set(HeaderAPIKey, t.Token)
	return endpoint(base, fasta2a.EndpointPath+suffix), h
}

func (APIKeyHeader) sealed() {}

// Scheme implements [Transport].
func (QueryParam) Scheme() Scheme { return SchemeQuery }

// Resolve implements [Transport].
func (t QueryParam) Resolve(base *url.URL, suffix string) (*url.URL, http.Header) {
	u := endpoint(base, fasta2a.EndpointPath+suffix)
	q := u.Query()
	q.Set(QueryAPIKey, t.Token)
	u.RawQuery = q.Encode()
	return u, http.Header{}
}

func (QueryParam) sealed() {}

// endpoint returns a copy of base with p appended to its path.
func endpoint(base *url.URL, p string) *url.URL {
	u := *base
	u.Path = strings.TrimRight(base.Path, "/") + p
	u.RawPath = ""
	u.Fragment = ""
	return &u
}

// New returns the transport for scheme carrying token.
//
// The token is validated with [ValidateToken].
func New(scheme Scheme, token string) (Transport, error) {
	if err := ValidateToken(token); err != nil {
		return nil, err
	}

	switch scheme {
	case SchemePath:
		return PathToken{Token: token}, nil
	case SchemeBearer:
		return BearerHeader{Token: token}, nil
	case SchemeAPIKey:
		return APIKeyHeader{Token: token}, nil
	case SchemeQuery:
		return QueryParam{Token: token}, nil
	default:
		return nil, fmt.Errorf("unknown auth scheme: %q", scheme)
	}
}

// ValidateToken reports whether token is a 16-character alphanumeric string.
func ValidateToken(token string) error {
	if len(token) != TokenLength {
		return fmt.Errorf("token must be %d characters, got %d", TokenLength, len(token))
	}
	for i := 0; i < len(token); i++ {
		c := token[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
			return fmt.Errorf("token must be alphanumeric, found %q at position %d", c, i)
		}
	}
	return nil
}

// TokenFromURL extracts the token from a token-in-path URL such as
// "http://host:8080/a2a/t-AB12CD34EF56GH78", returning the base URL with the endpoint path
// removed. ok is false when rawURL does not carry a token.
func TokenFromURL(rawURL string) (base, token string, ok bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", false
	}

	marker := fasta2a.EndpointPath + "/" + fasta2a.TokenPathPrefix
	i := strings.Index(u.Path, marker)
	if i < 0 {
		return "", "", false
	}

	token = strings.TrimRight(u.Path[i+len(marker):], "/")
	if j := strings.IndexByte(token, '/'); j >= 0 {
		token = token[:j]
	}
	if token == "" {
		return "", "", false
	}

	u.Path = u.Path[:i]
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return strings.TrimRight(u.String(), "/"), token, true
}
