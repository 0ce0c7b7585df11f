package mariadb

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/skundu42/doom-backend/internal/cursor"
	"github.com/skundu42/doom-backend/internal/db"
	"github.com/skundu42/doom-backend/internal/model"
)

func TestCommentRepository_Create_Success(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewCommentRepository(sqlDB)

	c := &model.Comment{
		ID:        db.NewUUID(),
		PostID:    db.NewUUID(),
		AuthorID:  db.NewUUID(),
		Body:      "nice one",
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE posts SET comment_count").
		WithArgs(c.PostID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO comments").
		WithArgs(c.ID, c.PostID, c.AuthorID, c.Body, c.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	if err := repo.Create(context.Background(), c); err != nil {
		t.Errorf("Create() returned unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestCommentRepository_Create_PostMissing(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewCommentRepository(sqlDB)
	c := &model.Comment{ID: db.NewUUID(), PostID: db.NewUUID(), AuthorID: db.NewUUID(), Body: "hi"}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE posts SET comment_count").
		WithArgs(c.PostID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err = repo.Create(context.Background(), c)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestCommentRepository_Create_InsertError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewCommentRepository(sqlDB)
	c := &model.Comment{ID: db.NewUUID(), PostID: db.NewUUID(), AuthorID: db.NewUUID(), Body: "hi"}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE posts SET comment_count").
		WithArgs(c.PostID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO comments").
		WillReturnError(errors.New("db.Exec failed"))
	mock.ExpectRollback()

	if err := repo.Create(context.Background(), c); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestCommentRepository_ListPage(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewCommentRepository(sqlDB)
	postID := db.NewUUID()
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "post_id", "author_id", "body", "created_at"}).
		AddRow(db.NewUUID(), postID, db.NewUUID(), "first", now).
		AddRow(db.NewUUID(), postID, db.NewUUID(), "second", now.Add(-time.Minute))

	mock.ExpectQuery("SELECT (.+) FROM comments").
		WithArgs(postID, 21).
		WillReturnRows(rows)

	out, err := repo.ListPage(context.Background(), postID, nil, 21)
	if err != nil {
		t.Fatalf("ListPage() returned unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(out))
	}
	if out[0].Body != "first" || out[1].Body != "second" {
		t.Errorf("unexpected rows %+v", out)
	}
}

func TestCommentRepository_ListPage_WithCursor(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewCommentRepository(sqlDB)
	postID := db.NewUUID()
	after := &cursor.Cursor{
		OrderingKey: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		TiebreakID:  db.NewUUID(),
	}

	mock.ExpectQuery("SELECT (.+) FROM comments").
		WithArgs(postID, after.OrderingKey, after.OrderingKey, after.TiebreakID, 21).
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "author_id", "body", "created_at"}))

	out, err := repo.ListPage(context.Background(), postID, after, 21)
	if err != nil {
		t.Fatalf("ListPage() returned unexpected error: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected no rows, got %d", len(out))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}
