package session

import (
	"context"
	"sync"

	"github.com/clubverde/memberweb/internal/apiclient"
	"github.com/clubverde/memberweb/internal/logging"
	"github.com/clubverde/memberweb/internal/models"
)

// Identity is the cached view of one visitor's authentication state. Empty
// profile fields plus Authenticated=false is the signed-out shape.
type Identity struct {
	Profile       models.Profile
	Token         string
	Authenticated bool
}

// Cache holds identities per session for the life of the process. It never
// redirects; that stays the route guard's job at the network edge.
type Cache struct {
	api *apiclient.Client

	mu       sync.RWMutex
	sessions map[string]*Identity
}

func NewCache(api *apiclient.Client) *Cache {
	return &Cache{
		api:      api,
		sessions: make(map[string]*Identity),
	}
}

func (c *Cache) Get(sessionID string) *Identity {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if id, ok := c.sessions[sessionID]; ok {
		return id
	}
	return &Identity{}
}

func (c *Cache) put(sessionID string, id *Identity) {
	c.mu.Lock()
	c.sessions[sessionID] = id
	c.mu.Unlock()
}

// Initialize populates the cache from the backend profile endpoint using the
// ambient token. Any failure leaves the session unauthenticated with empty
// fields; the error never escapes past a log line.
func (c *Cache) Initialize(ctx context.Context, sessionID, token string) *Identity {
	if token == "" {
		id := &Identity{}
		c.put(sessionID, id)
		return id
	}

	profile, err := c.api.Profile(ctx, token)
	if err != nil {
		logging.FromContext(ctx).Warn("profile_init_failed", "session_id", sessionID, "error", err)
		id := &Identity{}
		c.put(sessionID, id)
		return id
	}

	id := &Identity{Profile: *profile, Token: token, Authenticated: true}
	c.put(sessionID, id)
	return id
}

// Login delegates credential verification to the backend. The boolean is the
// whole contract: callers must check it, nothing is thrown past this boundary.
func (c *Cache) Login(ctx context.Context, sessionID, email, password string) (*Identity, bool) {
	resp, err := c.api.Login(ctx, email, password)
	if err != nil {
		logging.FromContext(ctx).Info("login_failed", "session_id", sessionID, "error", err)
		return nil, false
	}

	id := &Identity{Profile: resp.Profile, Token: resp.Token, Authenticated: true}
	c.put(sessionID, id)
	return id, true
}

// Register mirrors Login for new members.
func (c *Cache) Register(ctx context.Context, sessionID string, req apiclient.RegisterRequest) (*Identity, bool) {
	resp, err := c.api.Register(ctx, req)
	if err != nil {
		logging.FromContext(ctx).Info("register_failed", "session_id", sessionID, "error", err)
		return nil, false
	}

	id := &Identity{Profile: resp.Profile, Token: resp.Token, Authenticated: true}
	c.put(sessionID, id)
	return id, true
}

// Logout notifies the backend best-effort and resets the local state
// unconditionally.
func (c *Cache) Logout(ctx context.Context, sessionID string) {
	id := c.Get(sessionID)
	if id.Token != "" {
		if err := c.api.Logout(ctx, id.Token); err != nil {
			logging.FromContext(ctx).Warn("logout_notify_failed", "session_id", sessionID, "error", err)
		}
	}
	c.put(sessionID, &Identity{})
}
