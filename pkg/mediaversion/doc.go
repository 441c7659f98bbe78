// Package mediaversion serves one site in several device-specific versions,
// such as full, tablet and mobile, and keeps the version consistent between
// the URL, the client session and redirects.
//
// # Versions and URLs
//
// A Registry lists the allowed versions in order, each with the token that
// marks it in a URL. In ModePath the token is the leading path segment
// (/m/products); the default version has an empty token and no prefix. In
// ModeQuery the version travels in a query parameter
// (/products?media_version=mobile).
//
// # Resolution
//
// For each request the Resolver applies these rules in order:
//
//  1. With a single registered version nothing happens.
//  2. A valid switch parameter on a GET request is stored in the session and
//     the client is redirected to the same page in that version.
//  3. Without a stored version, the user agent is classified once (mobile,
//     tablet or desktop) and mapped to the first matching registered version.
//  4. The URL version is then compared with the stored or detected one. In
//     strict session mode, or right after a detection that disagrees with
//     the URL, the session wins and the client is redirected. Otherwise the
//     URL wins and the session follows it.
//
// With RouteGetRequestsOnly only GET and HEAD requests may detect or change
// a version; other methods are pinned to the stored version.
//
// Redirects always use 303 See Other and are suppressed when the target
// equals the current URL.
//
// # Links
//
// Resolver.URL renders a Route with the version marker of the current
// request, or of an explicit media_version param. In strict mode a link to
// another version carries the switch parameter so that following it
// changes the session.
//
//	res, err := mediaversion.NewResolver(cfg,
//	    mediaversion.WithSessionManager(sessions),
//	    mediaversion.WithLogger(log),
//	)
//	if err != nil {
//	    return err
//	}
//	router.Use(res.Middleware)
package mediaversion
