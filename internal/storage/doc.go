// Package storage provides the durable key-value store that keeps UI
// preferences between sessions.
//
// # Stores
//
// SQLiteStore keeps entries in a single table of a SQLite file, written
// through the pure-Go modernc.org/sqlite driver:
//
//	store, err := storage.OpenSQLite(ctx, "/home/user/.config/album-catalog/preferences.db")
//	defer store.Close()
//
//	_ = store.Set(ctx, "theme", "light")
//	value, ok, err := store.Get(ctx, "theme")
//
// MemoryStore keeps entries in a map and is meant for tests and for
// sessions where the state directory is unavailable.
//
// A missing key is reported with ok == false, never as an error.
package storage
