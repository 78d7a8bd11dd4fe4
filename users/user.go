package users

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

// User is a user model
type User struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email,omitempty"`
	IsAdmin   bool      `db:"is_admin" json:"is_admin"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	Hash      []byte    `db:"hash" json:"-"`
	db        *sqlx.DB  `db:"-" json:"-"`
}

// Create will create a user. The insert avoids database specific
// returning clauses so it works on both postgres and sqlite.
func Create(db *sqlx.DB, u *User, pw string) error {
	if u.Name == "" && u.Email == "" {
		return ErrInvalidUser
	}
	u.db = db
	if err := u.setPassword(pw); err != nil {
		return err
	}
	u.CreatedAt = time.Now().UTC()
	_, err := db.NamedExec(`
	  INSERT INTO
		users (name, email, is_admin, hash, created_at)
	  VALUES (:name, :email, :is_admin, :hash, :created_at)`, u)
	if err != nil {
		return err
	}
	fresh, err := GetUserByName(db, u.Name)
	if err != nil {
		return err
	}
	*u = *fresh
	u.db = db
	return nil
}

// Delete a user
func Delete(db *sqlx.DB, u User) error {
	u.db = db
	return u.Delete()
}

// GetUserByID will get a user from the database by id
func GetUserByID(db *sqlx.DB, id interface{}) (*User, error) {
	return getUser(db, "SELECT * FROM users WHERE id = $1", id)
}

// GetUserByName will query the database for a user with a specific name
func GetUserByName(db *sqlx.DB, name string) (*User, error) {
	return getUser(db, "SELECT * FROM users WHERE name = $1", name)
}

func getUser(db *sqlx.DB, query string, cond interface{}) (*User, error) {
	u := &User{}
	err := db.QueryRowx(db.Rebind(query), cond).StructScan(u)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	u.db = db
	return u, nil
}

// Delete will delete the user
func (u *User) Delete() error {
	query := "DELETE FROM users WHERE id = :id"
	if u.Name != "" {
		query += " AND name = :name"
	}
	res, err := u.db.NamedExec(query, u)
	if err != nil {
		return err
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Save will save the user to the database
func (u *User) Save() error {
	if u.Hash == nil {
		return ErrNoPassword
	}
	if u.Name == "" {
		return ErrInvalidUser
	}
	_, err := u.db.NamedExec(`
	  UPDATE users
	    SET
		  name = :name,
		  email = :email,
		  is_admin = :is_admin,
		  hash = :hash
		WHERE id = :id`,
		u,
	)
	return err
}

// PasswordOK check a password string against the stored password hash
// and returns false if the password is incorrect.
func (u *User) PasswordOK(pw string) bool {
	return bcrypt.CompareHashAndPassword(u.Hash, []byte(pw)) == nil
}

// SetDB allows callers to set the internal
// database field on the user struct
func (u *User) SetDB(db *sqlx.DB) {
	u.db = db
}

func (u *User) setPassword(pw string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Hash = hash
	return nil
}
