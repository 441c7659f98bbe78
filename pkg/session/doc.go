// Package session keeps small amounts of per-client state between requests.
//
// A Manager ties together a Transport, which moves an opaque token between
// client and server, and a Store, which persists the session under that
// token. MemoryStore and RedisStore are provided and encode sessions as JSON
// alike, so a value reads back with the same type from either. The default
// transport is a signed cookie from the cookie package.
//
// Session values live in namespaces. Each namespace has its own expiry,
// reset on every write, so one subsystem can keep a value for an hour while
// another keeps its own for a day:
//
//	mgr := session.New(session.WithCookieManager(cookies))
//	prefs := mgr.Namespace("prefs", 24*time.Hour)
//
//	if err := prefs.Set(ctx, w, r, "theme", "dark"); err != nil {
//	    return err
//	}
//	theme, ok, err := prefs.GetString(ctx, r, "theme")
//
// The session itself expires IdleTimeout after its last save, extended to
// cover its live namespaces but never beyond MaxLifetime from creation.
//
// Manager.Middleware loads the session into the request context once, so
// repeated reads in the same request do not hit the store.
package session
