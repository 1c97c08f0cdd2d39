// Package litsea provides a compact word segmenter for Japanese and other
// scripts where whitespace is not a reliable word boundary.
package litsea

// Generate documentation for the core package
//go:generate gomarkdoc -o README.md -e . --embed --repository.url https://github.com/syobocat/litsea --repository.default-branch master --repository.path /

// Generate documentation for the CLI package
//go:generate gomarkdoc -o ./cmd/litsea/README.md -e ./cmd/litsea --embed --repository.url https://github.com/syobocat/litsea --repository.default-branch master --repository.path /cmd/litsea
