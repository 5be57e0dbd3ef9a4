// Package ports declares the interfaces the HTTP adapter depends on. The
// greeting port is implemented by internal/app and the health ports by
// internal/platform/health.
package ports
