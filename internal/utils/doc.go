// Package utils provides general-purpose helper utilities used across
// different parts of the application: type-safe context keys and JWT token
// generation and validation.
package utils
