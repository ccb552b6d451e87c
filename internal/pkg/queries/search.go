package queries

const (
	InsertSearch = `
		INSERT INTO searches (user_id, name, query, params, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id
	`

	SelectSearchByID = `
		SELECT id, user_id, name, query, params, created_at, updated_at
		FROM searches
		WHERE id = $1
	`

	SelectSearchesByUserID = `
		SELECT id, user_id, name, query, params, created_at, updated_at
		FROM searches
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	UpdateSearchByID = `
		UPDATE searches
		SET name = $2, query = $3, params = $4, updated_at = NOW()
		WHERE id = $1
	`

	DeleteSearchByID = `
		DELETE FROM searches
		WHERE id = $1
	`
)
