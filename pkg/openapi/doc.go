// Package openapi holds the contracts for loading OpenAPI documents and
// turning request bodies into element forms. The kin-openapi backed loader
// and parser live under internal/openapi; the root formbs package wires them.
package openapi
