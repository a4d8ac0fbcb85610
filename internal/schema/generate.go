package schema

// The generated client lives in internal/repo and is not committed.
//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target ../repo .
