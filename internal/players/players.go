// Package players stores the people behind daily challenge results.
//
// A player is a display name, optionally protected by a password so the same
// name can be claimed again from another device. Passwords are stored as
// bcrypt hashes; a player created without one can never log in and only keeps
// the token issued at creation.
package players

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound           = errors.New("player not found")
	ErrNameTaken          = errors.New("name taken")
	ErrInvalidCredentials = errors.New("invalid name or password")
	ErrInvalidName        = errors.New("name must be 3-24 letters, numbers or underscores")
	ErrInvalidPassword    = errors.New("password must be 8-100 chars")
)

// Player is a stored player. PasswordHash is empty for password-less players.
type Player struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Store reads and writes the players table.
type Store struct {
	db   *sql.DB
	cost int
	now  func() time.Time
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, cost: bcrypt.DefaultCost, now: time.Now}
}

// WithCost returns a copy of s hashing with the given bcrypt cost.
func (s *Store) WithCost(cost int) *Store {
	c := *s
	c.cost = cost
	return &c
}

// Create validates and inserts a new player. An empty password creates a
// player that cannot log in.
func (s *Store) Create(ctx context.Context, name, password string) (*Player, error) {
	name = strings.TrimSpace(name)
	if err := validate(name, password); err != nil {
		return nil, err
	}

	var hash string
	if password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		hash = string(h)
	}

	p := &Player{
		ID:           ulid.Make().String(),
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC().Truncate(time.Second),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO players (id, name, password_hash, created_at) VALUES (?,?,?,?)`,
		p.ID, p.Name, p.PasswordHash, p.CreatedAt.Format(time.RFC3339))
	if err != nil {
		var se sqlite3.Error
		if errors.As(err, &se) && se.Code == sqlite3.ErrConstraint {
			return nil, ErrNameTaken
		}
		return nil, err
	}
	return p, nil
}

// Authenticate returns the player named name if password matches its hash.
func (s *Store) Authenticate(ctx context.Context, name, password string) (*Player, error) {
	p, err := s.ByName(ctx, strings.TrimSpace(name))
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if p.PasswordHash == "" || bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return p, nil
}

// ByID loads a player or returns ErrNotFound.
func (s *Store) ByID(ctx context.Context, id string) (*Player, error) {
	return scan(s.db.QueryRowContext(ctx,
		`SELECT id, name, password_hash, created_at FROM players WHERE id=?`, id))
}

// ByName loads a player by case-insensitive name or returns ErrNotFound.
func (s *Store) ByName(ctx context.Context, name string) (*Player, error) {
	return scan(s.db.QueryRowContext(ctx,
		`SELECT id, name, password_hash, created_at FROM players WHERE lower(name)=lower(?)`, name))
}

func scan(row *sql.Row) (*Player, error) {
	var p Player
	var created string
	if err := row.Scan(&p.ID, &p.Name, &p.PasswordHash, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	p.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return &p, nil
}

func validate(name, password string) error {
	if len(name) < 3 || len(name) > 24 {
		return ErrInvalidName
	}
	for _, r := range name {
		if !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return ErrInvalidName
		}
	}
	if password != "" && (len(password) < 8 || len(password) > 100) {
		return ErrInvalidPassword
	}
	return nil
}
