package handlers

import (
	"sort"

	"myrouting/domain"
)

func toRouteResponse(id domain.SessionID, route, encoded string) RouteResponse {
	return RouteResponse{
		SessionId:        string(id),
		Route:            route,
		EncodedSessionId: encoded,
	}
}

// toEntriesResponse converts registry entries to the API response, sorted by member.
func toEntriesResponse(entries map[domain.Node]domain.RegistryEntry) EntriesResponse {
	out := make([]EntryInfo, 0, len(entries))
	for member, entry := range entries {
		out = append(out, EntryInfo{
			Member: string(member),
			Route:  string(entry.Route),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Member < out[j].Member })
	return EntriesResponse{Entries: out}
}
