// Package environment names the deployment environment the demo runs in and
// carries it through request contexts.
//
// Parse accepts the usual spellings (dev, stage, prod) of APP_ENV. Middleware
// attaches the parsed value to each request so handlers can branch on
// IsDevelopment or IsProduction without holding the configuration.
package environment
