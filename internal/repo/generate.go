// Package repo holds the ent-generated database client for the schemas
// in internal/schema. Generated code is not committed; run go generate
// before building.
package repo

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target . ../schema
