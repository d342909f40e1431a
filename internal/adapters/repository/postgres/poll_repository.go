package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/Mtar786/votingApp/internal/core/domain"
	"github.com/Mtar786/votingApp/internal/core/ports"
)

type pollRepository struct {
	db *sql.DB
}

func NewPollRepository(db *sql.DB) ports.PollRepository {
	return &pollRepository{
		db: db,
	}
}

func (r *pollRepository) Save(ctx context.Context, poll *domain.Poll) error {
	query := `
		INSERT INTO polls (id, question, options, tally, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		poll.ID, poll.Question, pq.Array(poll.Options), pq.Array(tallyToInt64(poll.Tally)),
		poll.CreatedBy, poll.CreatedAt, poll.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert poll: %w", err)
	}
	return nil
}

func (r *pollRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	query := `
		SELECT id, question, options, tally, created_by, created_at, updated_at
		FROM polls
		WHERE id = $1
	`

	poll, err := r.scanPoll(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}

	voters, err := r.fetchVoters(ctx, poll.ID)
	if err != nil {
		return nil, err
	}
	poll.Voters = voters

	return poll, nil
}

func (r *pollRepository) GetAll(ctx context.Context) ([]*domain.Poll, error) {
	query := `
		SELECT id, question, options, tally, created_by, created_at, updated_at
		FROM polls
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all polls: %w", err)
	}
	defer rows.Close()

	var polls []*domain.Poll
	for rows.Next() {
		poll, err := r.scanPoll(rows)
		if err != nil {
			return nil, err
		}
		polls = append(polls, poll)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating polls: %w", err)
	}
	return polls, nil
}

// RecordVote inserts the voter record and increments the tally slot in one
// transaction. The composite primary key on poll_voters makes the insert a
// no-op for a user who already voted, so concurrent duplicates cannot both
// pass the check; the tally only moves when the insert took effect.
func (r *pollRepository) RecordVote(ctx context.Context, pollID, userID uuid.UUID, choice int) (*domain.Poll, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertVoter := `
		INSERT INTO poll_voters (poll_id, user_id, choice)
		VALUES ($1, $2, $3)
		ON CONFLICT (poll_id, user_id) DO NOTHING
	`
	res, err := tx.ExecContext(ctx, insertVoter, pollID, userID, choice)
	if err != nil {
		return nil, fmt.Errorf("failed to insert voter record: %w", err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if inserted == 0 {
		return nil, domain.ErrAlreadyVoted
	}

	// postgres arrays are 1-indexed
	incrementTally := `
		UPDATE polls
		SET tally[$2] = tally[$2] + 1, updated_at = NOW()
		WHERE id = $1
	`
	if _, err := tx.ExecContext(ctx, incrementTally, pollID, choice+1); err != nil {
		return nil, fmt.Errorf("failed to increment tally: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return r.GetByID(ctx, pollID)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *pollRepository) scanPoll(row rowScanner) (*domain.Poll, error) {
	var poll domain.Poll
	var options pq.StringArray
	var tally pq.Int64Array

	err := row.Scan(&poll.ID, &poll.Question, &options, &tally, &poll.CreatedBy, &poll.CreatedAt, &poll.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPollNotFound
		}
		return nil, fmt.Errorf("failed to scan poll: %w", err)
	}

	poll.Options = options
	poll.Tally = make([]int, len(tally))
	for i, n := range tally {
		poll.Tally[i] = int(n)
	}

	return &poll, nil
}

func (r *pollRepository) fetchVoters(ctx context.Context, pollID uuid.UUID) ([]domain.VoterRecord, error) {
	query := `
		SELECT user_id, choice, created_at
		FROM poll_voters
		WHERE poll_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to get voters: %w", err)
	}
	defer rows.Close()

	voters := []domain.VoterRecord{}
	for rows.Next() {
		var v domain.VoterRecord
		if err := rows.Scan(&v.UserID, &v.Choice, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan voter record: %w", err)
		}
		voters = append(voters, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating voters: %w", err)
	}
	return voters, nil
}

func tallyToInt64(tally []int) []int64 {
	out := make([]int64, len(tally))
	for i, n := range tally {
		out[i] = int64(n)
	}
	return out
}
