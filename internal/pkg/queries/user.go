package queries

const (
	InsertUser = `
		INSERT INTO users (name, email, password, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id
	`

	SelectUserByID = `
		SELECT id, name, email, password, role, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	SelectUserByEmail = `
		SELECT id, name, email, password, role, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	SelectAllUsers = `
		SELECT id, name, email, password, role, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
	`

	UpdateUserByID = `
		UPDATE users
		SET name = $2, email = $3, updated_at = NOW()
		WHERE id = $1
	`

	DeleteUserByID = `
		DELETE FROM users
		WHERE id = $1
	`

	CountAllUsers = `
		SELECT COUNT(*) FROM users
	`

	CountUsersCreatedSince = `
		SELECT COUNT(*) FROM users
		WHERE created_at >= $1
	`
)
