// Package cookie writes and reads HTTP cookies with shared defaults and
// HMAC-SHA256 signatures.
//
// A Manager is created with one or more secrets of at least 32 bytes. The
// first secret signs new cookies; every secret is tried when verifying, so a
// new secret can be put in front while old cookies stay readable.
//
//	man, err := cookie.New([]string{os.Getenv("COOKIE_SECRET")})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = man.SetSigned(w, "sid", token, cookie.WithMaxAge(3600))
//	token, err := man.GetSigned(r, "sid")
//
// The signature covers the cookie name, so a value copied into another cookie
// fails verification with ErrInvalidSignature.
//
// Config can be filled from the environment (COOKIE_* variables) and turned
// into a Manager with NewFromConfig.
package cookie
