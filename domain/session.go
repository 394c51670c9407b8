package domain

// SessionID identifies an HTTP session. It carries no structure; it is only used to derive a CacheKey.
type SessionID string

// CacheKey is the key under which the data grid keeps the creation metadata of a session.
// Bytes of the key equal the bytes of the session id, so the key is hashed and placed exactly like
// the session's own entries: equal session ids always resolve to the same owners at one topology.
type CacheKey struct {
	sessionID SessionID
}

// NewCacheKey derives the cache key of the given session.
func NewCacheKey(id SessionID) CacheKey {
	return CacheKey{sessionID: id}
}

// SessionID returns the session the key was derived from.
func (k CacheKey) SessionID() SessionID {
	return k.sessionID
}

// Bytes returns the form of the key fed to the ownership hash.
func (k CacheKey) Bytes() []byte {
	return []byte(k.sessionID)
}

func (k CacheKey) String() string {
	return string(k.sessionID)
}
