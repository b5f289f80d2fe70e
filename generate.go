//go:build generate
// +build generate

// Package main provides the central entry point for code generation in this
// project.
//
// It regenerates test/fixtures/bendv3_schemas.json from the schema module of
// a BendV3 checkout. The checkout defaults to ../bendv3, next to this
// repository; set BENDV3_PATH (or put it in .env.local) to point elsewhere.
// Relative values resolve from the repository root.
//
// Usage:
//
//	go generate -tags generate ./...
//
// After regenerating, run the drift check to confirm internal/mirror still
// matches upstream:
//
//	go run ./cmd/schemagen drift
package main

// Export upstream schemas to the JSON fixture
//go:generate go run ./cmd/schemagen generate
