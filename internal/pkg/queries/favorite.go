package queries

const (
	InsertFavorite = `
		INSERT INTO favorites (user_id, property_id, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id
	`

	SelectFavoriteByID = `
		SELECT id, user_id, property_id, created_at, updated_at
		FROM favorites
		WHERE id = $1
	`

	SelectAllFavorites = `
		SELECT id, user_id, property_id, created_at, updated_at
		FROM favorites
		ORDER BY created_at DESC
	`

	SelectFavoritesByUserID = `
		SELECT id, user_id, property_id, created_at, updated_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	UpdateFavoriteByID = `
		UPDATE favorites
		SET property_id = $2, updated_at = NOW()
		WHERE id = $1
	`

	DeleteFavoriteByID = `
		DELETE FROM favorites
		WHERE id = $1
	`
)
