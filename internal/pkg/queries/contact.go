package queries

const (
	InsertContact = `
		INSERT INTO contacts (property_id, user_id, name, email, phone, message, desired_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id
	`

	SelectContactByID = `
		SELECT id, property_id, user_id, name, email, phone, message, desired_date, created_at, updated_at
		FROM contacts
		WHERE id = $1
	`

	SelectAllContacts = `
		SELECT id, property_id, user_id, name, email, phone, message, desired_date, created_at, updated_at
		FROM contacts
		ORDER BY created_at DESC
	`

	SelectContactsByUserID = `
		SELECT id, property_id, user_id, name, email, phone, message, desired_date, created_at, updated_at
		FROM contacts
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	SelectContactsByPropertyID = `
		SELECT id, property_id, user_id, name, email, phone, message, desired_date, created_at, updated_at
		FROM contacts
		WHERE property_id = $1
		ORDER BY created_at DESC
	`

	UpdateContactByID = `
		UPDATE contacts
		SET name = $2, email = $3, phone = $4, message = $5, desired_date = $6, updated_at = NOW()
		WHERE id = $1
	`

	DeleteContactByID = `
		DELETE FROM contacts
		WHERE id = $1
	`
)
