package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/crucial707/postboard/internal/models"
)

// ========================
// REPOSITORY STRUCT
// ========================

type PostRepo struct {
	DB *sql.DB
}

func NewPostRepo(db *sql.DB) *PostRepo {
	return &PostRepo{DB: db}
}

const postSelect = `
	SELECT p.id, p.title, p.content, p.created_at, p.date_posted, p.user_id, u.username
	FROM posts p
	JOIN users u ON u.id = p.user_id`

func scanPost(row interface{ Scan(...any) error }) (models.Post, error) {
	var p models.Post
	err := row.Scan(&p.ID, &p.Title, &p.Content, &p.CreatedAt, &p.DatePosted, &p.UserID, &p.Author)
	return p, translate(err)
}

// ========================
// CREATE POST
// ========================

// Create stores a post owned by userID. createdAt and datePosted are supplied
// by the caller so the display date is fixed at creation.
func (r *PostRepo) Create(ctx context.Context, userID int, title, content string, createdAt time.Time, datePosted string) (models.Post, error) {
	var p models.Post
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO posts (title, content, created_at, date_posted, user_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, title, content, created_at, date_posted, user_id`,
		title, content, createdAt, datePosted, userID,
	).Scan(&p.ID, &p.Title, &p.Content, &p.CreatedAt, &p.DatePosted, &p.UserID)
	return p, translate(err)
}

// ========================
// GET POST BY ID
// ========================

func (r *PostRepo) GetByID(ctx context.Context, id int) (models.Post, error) {
	return scanPost(r.DB.QueryRowContext(ctx, postSelect+` WHERE p.id = $1`, id))
}

// ========================
// LIST POSTS (newest first)
// ========================

// List returns every post ordered by creation time, most recent first. Equal
// timestamps fall back to the higher id so insertion order is preserved.
func (r *PostRepo) List(ctx context.Context) ([]models.Post, error) {
	return r.query(ctx, postSelect+` ORDER BY p.created_at DESC, p.id DESC`)
}

// ListPage is List with LIMIT/OFFSET applied.
func (r *PostRepo) ListPage(ctx context.Context, limit, offset int) ([]models.Post, error) {
	return r.query(ctx, postSelect+` ORDER BY p.created_at DESC, p.id DESC LIMIT $1 OFFSET $2`, limit, offset)
}

func (r *PostRepo) query(ctx context.Context, query string, args ...any) ([]models.Post, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// ========================
// COUNT POSTS
// ========================

func (r *PostRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&n)
	return n, err
}
