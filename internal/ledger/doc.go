// Package ledger is an append-only, Badger-backed record of (job-id, path)
// pairs marking completed work, letting a batch run resume after a crash by
// skipping only what already finished.
//
// It lives in its own Badger directory, separate from internal/store — the
// same separation original_source kept between its JobDb and GraphDb
// SQLite files. When opened with SyncWrites (as cmd/nabu does), each Mark
// commits durably before the next task is dispatched; a resumed run can
// then never lose track of finished work, only redo work whose mark hadn't
// landed yet.
package ledger
