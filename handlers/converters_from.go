package handlers

import (
	"fmt"
	"math"
	"strings"
	"time"

	"myrouting/domain"
	"myrouting/service"
)

// maxTTLMs is the largest ttl_ms that fits in a time.Duration.
const maxTTLMs = math.MaxInt64 / int64(time.Millisecond)

// fromRegisterRequest converts RegisterRequest to the member, its entry and the publication TTL.
// Returns service.MyError bad_parameter on validation failure.
func fromRegisterRequest(req RegisterRequest) (domain.Node, domain.RegistryEntry, time.Duration, error) {
	member := strings.TrimSpace(req.Member)
	route := strings.TrimSpace(req.Route)
	if member == "" {
		return "", domain.RegistryEntry{}, 0, service.NewBadParameterError("member is required", nil)
	}
	if route == "" {
		return "", domain.RegistryEntry{}, 0, service.NewBadParameterError("route is required", nil)
	}
	if req.TtlMs < 0 {
		return "", domain.RegistryEntry{}, 0, service.NewBadParameterError("ttl_ms must not be negative", nil)
	}
	if int64(req.TtlMs) > maxTTLMs {
		return "", domain.RegistryEntry{}, 0, service.NewBadParameterError(fmt.Sprintf("ttl_ms must not exceed %d", maxTTLMs), nil)
	}
	return domain.Node(member), domain.NewRegistryEntry(domain.Route(route)), time.Duration(req.TtlMs) * time.Millisecond, nil
}

func fromMember(member string) domain.Node {
	return domain.Node(strings.TrimSpace(member))
}
