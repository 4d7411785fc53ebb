package user

// Uniqueness lives on the users_email_key / users_username_key constraints,
// so check and insert are atomic at the database.
const (
	SelectUsers = `
		SELECT id, uuid, full_name, email, username, password, date_of_birth, address, phone, active
		FROM users
		ORDER BY id
	`
	SelectUserByUUID = `
		SELECT id, uuid, full_name, email, username, password, date_of_birth, address, phone, active
		FROM users
		WHERE uuid = $1
	`
	SelectUserByIdentifier = `
		SELECT id, uuid, full_name, email, username, password, date_of_birth, address, phone, active
		FROM users
		WHERE active AND (lower(username) = lower($1) OR lower(email) = lower($1))
	`
	InsertUser = `
		INSERT INTO users (full_name, email, username, password, date_of_birth, address, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING
		  id, uuid, full_name, email, username, password, date_of_birth, address, phone, active
	`
	UpdateUserByUUID = `
		UPDATE users
		SET full_name = $1,
		    username = $2
		WHERE uuid = $3 AND active
		RETURNING
		  id, uuid, full_name, email, username, password, date_of_birth, address, phone, active
	`
	SoftDeleteUserByUUID = `
		UPDATE users
		SET active = false
		WHERE uuid = $1 AND active
		RETURNING id
	`
)
