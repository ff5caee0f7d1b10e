package store

const (
	cacheDeleteAll = `DELETE FROM supply_cache WHERE user_id = ?;`

	cacheInsert = `INSERT INTO supply_cache (id, user_id, name, category, quantity, unit, color, brand, barcode, tags, notes, min_quantity, created_at, updated_at)
    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	cacheSelectAll = `SELECT id, user_id, name, category, quantity, unit, color, brand, barcode, tags, notes, min_quantity, created_at, updated_at
    FROM supply_cache
    WHERE user_id = ?
    ORDER BY LOWER(name);`

	cacheSelectOne = `SELECT id, user_id, name, category, quantity, unit, color, brand, barcode, tags, notes, min_quantity, created_at, updated_at
    FROM supply_cache
    WHERE user_id = ? AND id = ?;`

	sessionUpsert = `INSERT INTO sessions (user_id, login, token, created_at)
    VALUES (?, ?, ?, CURRENT_TIMESTAMP)
    ON CONFLICT (user_id) DO UPDATE SET login = excluded.login, token = excluded.token, created_at = excluded.created_at;`

	sessionSelect = `SELECT user_id, login, token
    FROM sessions
    ORDER BY created_at DESC
    LIMIT 1;`

	sessionDeleteAll = `DELETE FROM sessions;`
)
