// Package domain contains shared domain types used across the greeting
// sub-packages. Entity-specific logic lives in sub-packages (domain/text,
// domain/greeting); this root package holds the sentinel errors and the
// validation error type that the HTTP layer maps to status codes.
package domain
