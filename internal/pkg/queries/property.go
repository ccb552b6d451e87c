package queries

const (
	InsertProperty = `
		INSERT INTO properties (user_id, title, description, type, price, city, address, bedrooms, bathrooms, area_sqm, published, image_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING id
	`

	SelectPropertyByID = `
		SELECT id, user_id, title, description, type, price, city, address, bedrooms, bathrooms, area_sqm, published, image_path, created_at, updated_at
		FROM properties
		WHERE id = $1
	`

	SelectAllProperties = `
		SELECT id, user_id, title, description, type, price, city, address, bedrooms, bathrooms, area_sqm, published, image_path, created_at, updated_at
		FROM properties
		ORDER BY created_at DESC
	`

	SelectPublishedProperties = `
		SELECT id, user_id, title, description, type, price, city, address, bedrooms, bathrooms, area_sqm, published, image_path, created_at, updated_at
		FROM properties
		WHERE published = TRUE
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	SelectPropertiesByUserID = `
		SELECT id, user_id, title, description, type, price, city, address, bedrooms, bathrooms, area_sqm, published, image_path, created_at, updated_at
		FROM properties
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	SelectPropertiesByIDs = `
		SELECT id, user_id, title, description, type, price, city, address, bedrooms, bathrooms, area_sqm, published, image_path, created_at, updated_at
		FROM properties
		WHERE id = ANY($1)
	`

	UpdatePropertyByID = `
		UPDATE properties
		SET title = $2, description = $3, type = $4, price = $5, city = $6, address = $7, bedrooms = $8, bathrooms = $9, area_sqm = $10, published = $11, image_path = $12, updated_at = NOW()
		WHERE id = $1
	`

	DeletePropertyByID = `
		DELETE FROM properties
		WHERE id = $1
	`

	CountAllProperties = `
		SELECT COUNT(*) FROM properties
	`

	CountPublishedProperties = `
		SELECT COUNT(*) FROM properties
		WHERE published = TRUE
	`

	CountPropertiesCreatedSince = `
		SELECT COUNT(*) FROM properties
		WHERE created_at >= $1
	`
)
