package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/iAndrei22/DisciplineBuddy/internal/error_values"
	"github.com/iAndrei22/DisciplineBuddy/pkg/cleanup"
	"github.com/iAndrei22/DisciplineBuddy/pkg/entity"
)

type ChallengesRepository struct {
	conn PgConnection
}

func NewChallengesRepo(cfg DBConfig) *ChallengesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for challengesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for challengesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ChallengesRepository{
		conn: pool,
	}
}

func NewChallengesRepoWithConn(conn PgConnection) *ChallengesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for challengesRepo: " + err.Error())
	}
	return &ChallengesRepository{
		conn: conn,
	}
}

func (cr *ChallengesRepository) Create(ctx context.Context, challenge *entity.Challenge) (uuid.UUID, error) {
	var id uuid.UUID
	row := cr.conn.QueryRow(ctx, `INSERT INTO challenges (title, description, duration_days, category, created_by)
		VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		challenge.Title,
		challenge.Description,
		challenge.DurationDays,
		challenge.Category,
		challenge.CreatedBy,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrUserNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating challenge db error: " + err.Error())
	}
	return id, nil
}

func (cr *ChallengesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error) {
	var challenge entity.Challenge
	challenge.ID = id
	row := cr.conn.QueryRow(ctx, `SELECT title, description, duration_days, category, created_by, created_at
		FROM challenges WHERE id = $1;`, id)
	if err := row.Scan(&challenge.Title, &challenge.Description, &challenge.DurationDays,
		&challenge.Category, &challenge.CreatedBy, &challenge.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrChallengeNotFound
		}
		return nil, errors.New("getting challenge by id error: " + err.Error())
	}
	return &challenge, nil
}

func (cr *ChallengesRepository) List(ctx context.Context, limit, offset int) ([]*entity.Challenge, error) {
	challenges := make([]*entity.Challenge, 0)
	rows, err := cr.conn.Query(ctx, `SELECT id, title, description, duration_days, category, created_by, created_at
		FROM challenges ORDER BY created_at DESC LIMIT $1 OFFSET $2;`, limit, offset)
	if err != nil {
		return nil, errors.New("listing challenges error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		c := entity.Challenge{}
		err = rows.Scan(&c.ID, &c.Title, &c.Description, &c.DurationDays, &c.Category, &c.CreatedBy, &c.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling challenge error: " + err.Error())
		}
		challenges = append(challenges, &c)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return challenges, nil
}

func (cr *ChallengesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := cr.conn.Exec(ctx, `DELETE FROM challenges WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting challenge: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrChallengeNotFound
	}
	return nil
}

func (cr *ChallengesRepository) AddParticipant(ctx context.Context, challengeID, uid uuid.UUID, enrolledAt time.Time) error {
	_, err := cr.conn.Exec(ctx, `INSERT INTO challenge_participants (challenge_id, user_id, status, enrolled_at)
		VALUES ($1, $2, $3, $4);`,
		challengeID,
		uid,
		entity.StatusInProgress,
		enrolledAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrDuplicateEnrollment
			// FK violation
			case "23503":
				return errorvalues.ErrChallengeNotFound
			}
		}
		return errors.New("enrolling participant error: " + err.Error())
	}
	return nil
}

func (cr *ChallengesRepository) GetParticipant(ctx context.Context, challengeID, uid uuid.UUID) (*entity.Participant, error) {
	p := entity.Participant{
		ChallengeID: challengeID,
		UserID:      uid,
	}
	row := cr.conn.QueryRow(ctx, `SELECT status, enrolled_at, completed_at FROM challenge_participants
		WHERE challenge_id = $1 AND user_id = $2;`, challengeID, uid)
	if err := row.Scan(&p.Status, &p.EnrolledAt, &p.CompletedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrParticipantNotFound
		}
		return nil, errors.New("getting participant error: " + err.Error())
	}
	return &p, nil
}

func (cr *ChallengesRepository) GetParticipants(ctx context.Context, challengeID uuid.UUID) ([]entity.Participant, error) {
	rows, err := cr.conn.Query(ctx, `SELECT user_id, status, enrolled_at, completed_at FROM challenge_participants
		WHERE challenge_id = $1 ORDER BY enrolled_at;`, challengeID)
	if err != nil {
		return nil, errors.New("getting participants error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.Participant, 0, 2)
	for rows.Next() {
		p := entity.Participant{ChallengeID: challengeID}
		err = rows.Scan(&p.UserID, &p.Status, &p.EnrolledAt, &p.CompletedAt)
		if err != nil {
			return nil, errors.New("participant row parsing error: " + err.Error())
		}
		result = append(result, p)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected participant rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (cr *ChallengesRepository) UpdateParticipantStatus(ctx context.Context, challengeID, uid uuid.UUID, status entity.ParticipantStatus, completedAt *time.Time) error {
	ct, err := cr.conn.Exec(ctx, `UPDATE challenge_participants SET status = $1, completed_at = $2
		WHERE challenge_id = $3 AND user_id = $4;`,
		status,
		completedAt,
		challengeID,
		uid,
	)
	if err != nil {
		return errors.New("updating participant status error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrParticipantNotFound
	}
	return nil
}
