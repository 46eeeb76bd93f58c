// Package session holds the authenticated identity and bearer token for the
// active client session. The cart and checkout layers read it, never write it.
package session

import (
	"encoding/json"

	"cafe-client/internal/common/logger"
	"cafe-client/internal/domain"
	"cafe-client/internal/localstore"
)

// storageKey is the durable-storage key holding the session credentials.
const storageKey = "auth"

type persisted struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// Context is the session/auth state container. Single-writer, mutated only
// through SetCredentials and Logout.
type Context struct {
	user  *domain.User
	token string
	kv    *localstore.Store
	log   *logger.Logger
}

// New loads any persisted credentials. Malformed or unreadable state degrades
// to a logged-out session.
func New(kv *localstore.Store, log *logger.Logger) *Context {
	c := &Context{kv: kv, log: log}

	raw, ok, err := kv.Get(storageKey)
	if err != nil {
		log.Error("session_load_failed", err, nil)
		return c
	}
	if !ok {
		return c
	}
	var p persisted
	if err := json.Unmarshal([]byte(raw), &p); err != nil || p.User == nil || p.Token == "" {
		log.Warn("session_storage_malformed", nil)
		_ = kv.Delete(storageKey)
		return c
	}
	c.user = p.User
	c.token = p.Token
	return c
}

// SetCredentials records a successful signin/signup and persists it.
func (c *Context) SetCredentials(user domain.User, token string) {
	c.user = &user
	c.token = token
	c.persist()
}

// Logout clears the identity and token. The cart is deliberately left alone;
// cart persistence is independent of auth state.
func (c *Context) Logout() {
	c.user = nil
	c.token = ""
	if err := c.kv.Delete(storageKey); err != nil {
		c.log.Error("session_clear_failed", err, nil)
	}
}

// User returns the current identity, or nil when logged out.
func (c *Context) User() *domain.User { return c.user }

// Token returns the bearer token, or "" when logged out.
func (c *Context) Token() string { return c.token }

// Role returns the current role, or "" when logged out.
func (c *Context) Role() domain.Role {
	if c.user == nil {
		return ""
	}
	return c.user.Role
}

func (c *Context) IsAuthenticated() bool { return c.user != nil && c.token != "" }

func (c *Context) IsAdmin() bool { return c.Role() == domain.RoleAdmin }

// CanPlaceOrder reports whether the current role may submit orders.
// Administrators acting in an administrative capacity are barred.
func (c *Context) CanPlaceOrder() bool { return !c.IsAdmin() }

func (c *Context) persist() {
	b, err := json.Marshal(persisted{User: c.user, Token: c.token})
	if err == nil {
		err = c.kv.Set(storageKey, string(b))
	}
	if err != nil {
		c.log.Error("session_persist_failed", &domain.PersistenceError{Op: "save", Err: err}, nil)
	}
}
