// Package adapters holds clients for other myrouting nodes: the HTTP registry API and the gRPC locate service.
package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"myrouting/domain"
	"myrouting/helpers"
	"myrouting/interfaces"
	"myrouting/service"
)

// RegistryHTTP creates an interfaces.RegistryStore that uses the registry API of another myrouting node:
// GET baseURL/v1/entries, POST baseURL/v1/register and POST baseURL/v1/unregister/{member}.
// Panics on empty baseURL or nil client.
//
// Called from cmd/main when registry.type is http.
func RegistryHTTP(baseURL string, client *http.Client) interfaces.RegistryStore {
	return &registryHTTP{
		baseURL: helpers.StrPanic(baseURL, "adapters.registry_http.go: baseURL is required"),
		client:  helpers.NilPanic(client, "adapters.registry_http.go: http client is required"),
	}
}

type registryHTTP struct {
	baseURL string
	client  *http.Client
}

type entriesResponse struct {
	Entries []entryInfo `json:"entries"`
}

type entryInfo struct {
	Member string `json:"member"`
	Route  string `json:"route"`
}

type registerRequest struct {
	Member string `json:"member"`
	Route  string `json:"route"`
	TtlMs  int64  `json:"ttl_ms,omitempty"`
}

const requestTimeout = 5 * time.Second

// Publish performs POST baseURL/v1/register. ttl is sent in milliseconds; sub-millisecond ttls round up to 1ms.
func (r *registryHTTP) Publish(ctx context.Context, member domain.Node, entry domain.RegistryEntry, ttl time.Duration) error {
	body := registerRequest{Member: member.String(), Route: string(entry.Route)}
	if ttl > 0 {
		body.TtlMs = max(ttl.Milliseconds(), 1)
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return service.NewInternalServerError("registry register encode error", err)
	}
	return r.post(ctx, "/v1/register", payload)
}

// Remove performs POST baseURL/v1/unregister/{member}; member is path-escaped.
func (r *registryHTTP) Remove(ctx context.Context, member domain.Node) error {
	return r.post(ctx, "/v1/unregister/"+url.PathEscape(member.String()), nil)
}

// Entries performs GET baseURL/v1/entries. Entries with an empty member or route are skipped.
func (r *registryHTTP) Entries(ctx context.Context) (map[domain.Node]domain.RegistryEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/v1/entries", nil)
	if err != nil {
		return nil, service.NewInternalServerError("registry entries request error", err)
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, service.NewInternalServerError("registry entries request error", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, service.NewInternalServerError(fmt.Sprintf("registry entries returned %d", resp.StatusCode), nil)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, service.NewInternalServerError("registry entries read error", err)
	}
	var parsed entriesResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, service.NewInternalServerError("registry entries decode error", err)
	}
	if parsed.Entries == nil {
		return nil, service.NewInternalServerError("registry entries response missing entries field", nil)
	}
	out := make(map[domain.Node]domain.RegistryEntry, len(parsed.Entries))
	for _, e := range parsed.Entries {
		if e.Member == "" || e.Route == "" {
			continue
		}
		out[domain.Node(e.Member)] = domain.NewRegistryEntry(domain.Route(e.Route))
	}
	return out, nil
}

func (r *registryHTTP) post(ctx context.Context, path string, payload []byte) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+path, body)
	if err != nil {
		return service.NewInternalServerError("registry request error", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return service.NewInternalServerError("registry request error", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK {
		return service.NewInternalServerError(fmt.Sprintf("registry %s returned %d", path, resp.StatusCode), nil)
	}
	return nil
}
