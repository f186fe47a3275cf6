// Package repo holds the ent-generated client for the schemas under
// internal/schema. Run go generate ./internal/repo to regenerate.
package repo

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target . --feature sql/execquery,sql/upsert ../schema
