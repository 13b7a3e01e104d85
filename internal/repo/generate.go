// Package repo holds the ent-generated database client for the schemas in
// internal/schema. Run go generate to (re)build it; generated files are not
// committed.
package repo

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target . --feature sql/execquery ../schema
