package helpers

import (
	"strings"

	"google.golang.org/grpc/metadata"
)

// HeaderSessionID is the gRPC metadata key carrying the session id to locate.
const HeaderSessionID = "session-id"

// HeaderRoute is the gRPC response header key carrying the located route.
const HeaderRoute = "route"

// HeaderEncodedSessionID is the gRPC response header key carrying the session id with its route suffix.
const HeaderEncodedSessionID = "encoded-session-id"

// GetHeaderValue returns the first value of header key in metadata. Key is lowercased (gRPC canonicalizes keys).
//
// Parameters: md: incoming or outgoing metadata, nil yields ("", false); key: header name.
//
// Returns: (value, true) when there is a non-empty value; ("", false) when md is nil, key is missing or value is empty.
//
// Called from GetSessionID and adapters.LocatorClient when reading the route header.
func GetHeaderValue(md metadata.MD, key string) (string, bool) {
	if md == nil {
		return "", false
	}
	vals := md.Get(strings.ToLower(key))
	if len(vals) == 0 || vals[0] == "" {
		return "", false
	}
	return vals[0], true
}

// GetSessionID returns the session id from the "session-id" header; surrounding spaces are trimmed.
//
// Returns: (session id, true) or ("", false) when missing, empty or whitespace-only.
//
// Called from handlers.grpcServer.Locate.
func GetSessionID(md metadata.MD) (string, bool) {
	v, ok := GetHeaderValue(md, HeaderSessionID)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	return v, true
}
