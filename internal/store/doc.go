// Package store holds the multi-tenant note and device state of the server
// and the backends that persist snapshots of it.
//
// [Storage] keeps every tenant's devices and notes in memory, keyed by the
// owning principal. Every operation takes the owner explicitly; there is no
// code path that reads or writes a tenant other than the one passed in.
// Snapshots of the whole state can be exported, validated, imported and
// persisted through a [SnapshotStorage] (JSON file or SQL database).
package store
