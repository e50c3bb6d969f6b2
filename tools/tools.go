//go:build tools

// Package tools lists development tools used with this module.
// They are installed with `go install` and are not tracked in go.mod.
package tools

// Air rebuilds cmd/storefront on change; with DEV=true templates and static
// assets are also read from disk.
//   Install: go install github.com/air-verse/air@v1.63.0
//   Run:     DEV=true air --build.cmd "go build -o ./tmp/storefront ./cmd/storefront" --build.bin ./tmp/storefront
//
// mockgen regenerates internal/mocks (see internal/mocks/generate.go).
//   Run: go generate ./internal/mocks
