package mariadb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/skundu42/doom-backend/internal/db"
	"github.com/skundu42/doom-backend/internal/logger"
	"github.com/skundu42/doom-backend/internal/port"
)

type ToggleRepository struct {
	db *sql.DB
}

// compile-time check: *ToggleRepository must satisfy port.ToggleRepository
var _ port.ToggleRepository = (*ToggleRepository)(nil)

func NewToggleRepository(db *sql.DB) *ToggleRepository {
	return &ToggleRepository{db: db}
}

func toggleTables(kind port.ToggleKind) (table, counter string) {
	if kind == port.ToggleBookmark {
		return "post_bookmarks", "bookmark_count"
	}
	return "post_likes", "like_count"
}

// Set flips the relation row and adjusts the counter inside one transaction.
// The counter only moves when the relation row actually changed, so replays
// and concurrent duplicates cannot make it drift. A missing post surfaces as
// sql.ErrNoRows.
func (r *ToggleRepository) Set(ctx context.Context, kind port.ToggleKind, postID, userID db.UUID, on bool) (bool, error) {
	logger.Debugf(ctx, "setting %s=%t on post #%s for user #%s...", kind, on, postID, userID)

	table, counter := toggleTables(kind)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			logger.Warnf(ctx, "failed rolling back %s toggle: %v", kind, err)
		}
	}()

	// lock the post row so concurrent toggles on it serialize; a missing row
	// means the post does not exist
	var one int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM posts WHERE id = ? FOR UPDATE`, postID).Scan(&one)
	if err != nil {
		return false, err
	}

	var exists int
	err = tx.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE post_id = ? AND user_id = ?`, table),
		postID, userID,
	).Scan(&exists)
	if err != nil {
		return false, err
	}

	if on == (exists > 0) {
		// already in the requested state
		return false, tx.Commit()
	}

	if on {
		if _, err := tx.ExecContext(ctx,
			fmt.Sprintf(`INSERT IGNORE INTO %s (post_id, user_id) VALUES (?, ?)`, table),
			postID, userID,
		); err != nil {
			return false, err
		}
	} else {
		if _, err := tx.ExecContext(ctx,
			fmt.Sprintf(`DELETE FROM %s WHERE post_id = ? AND user_id = ?`, table),
			postID, userID,
		); err != nil {
			return false, err
		}
	}

	// guarded adjustment: the counter can never go negative even if the
	// relation and the counter somehow disagree
	var counterQuery string
	if on {
		counterQuery = fmt.Sprintf(`UPDATE posts SET %s = %s + 1 WHERE id = ?`, counter, counter)
	} else {
		counterQuery = fmt.Sprintf(`UPDATE posts SET %s = CASE WHEN %s > 0 THEN %s - 1 ELSE 0 END WHERE id = ?`, counter, counter, counter)
	}
	if _, err := tx.ExecContext(ctx, counterQuery, postID); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

func (r *ToggleRepository) IsSet(ctx context.Context, kind port.ToggleKind, postID, userID db.UUID) (bool, error) {
	table, _ := toggleTables(kind)

	var exists int
	err := r.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE post_id = ? AND user_id = ?`, table),
		postID, userID,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}
