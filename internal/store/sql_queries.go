package store

const (
	appendConflictLog = `INSERT INTO sync_conflict_log (
			table_name,
			record_id,
			local_version,
			remote_version,
			resolution,
			local_data,
			remote_data,
			detected_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?);`

	selectConflictColumns = `SELECT id, table_name, record_id, local_version, remote_version, resolution, local_data, remote_data, detected_at
		FROM sync_conflict_log`

	conflictHistoryQuery = selectConflictColumns + `
		WHERE table_name = ? AND record_id = ?
		ORDER BY detected_at DESC;`

	recentConflictsQuery = selectConflictColumns + `
		ORDER BY detected_at DESC
		LIMIT ?;`

	appendChangeLog = `INSERT INTO sync_change_log (
			change_id,
			table_name,
			record_id,
			operation,
			synced,
			error,
			retry_count,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?);`

	markChangeSyncedQuery = `UPDATE sync_change_log
		SET synced = 1, error = ''
		WHERE change_id = ?;`

	recordChangeFailureQuery = `UPDATE sync_change_log
		SET error = ?, retry_count = ?
		WHERE change_id = ?;`

	selectChangeColumns = `SELECT id, change_id, table_name, record_id, operation, synced, error, retry_count, created_at
		FROM sync_change_log`

	changeHistoryQuery = selectChangeColumns + `
		WHERE table_name = ? AND record_id = ?
		ORDER BY created_at DESC;`

	recentChangesQuery = selectChangeColumns + `
		ORDER BY created_at DESC
		LIMIT ?;`

	loadCheckpointQuery = `SELECT last_full_sync_at, last_incremental_sync_at, in_progress
		FROM sync_state
		WHERE id = 1;`

	setFullSyncAtQuery = `UPDATE sync_state
		SET last_full_sync_at = ?
		WHERE id = 1;`

	setIncrementalSyncAtQuery = `UPDATE sync_state
		SET last_incremental_sync_at = ?
		WHERE id = 1;`

	setInProgressQuery = `UPDATE sync_state
		SET in_progress = ?
		WHERE id = 1;`
)
