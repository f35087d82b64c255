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

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(cfg DBConfig) *UsersRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for usersRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &UsersRepository{
		conn: pool,
	}
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	_, err := ur.conn.Exec(ctx, `INSERT INTO users (name, password_hash) VALUES ($1, $2);`, user.Name, user.PasswordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrUserExists
			}
		}
		return errors.New("creating user db error: " + err.Error())
	}
	return nil
}

func (ur *UsersRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, `SELECT id, name, password_hash, score, xp, level, total_logins,
		login_streak, last_login, last_activity, completed_challenges, badges FROM users WHERE name = $1;`, name)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by name error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, `SELECT id, name, password_hash, score, xp, level, total_logins,
		login_streak, last_login, last_activity, completed_challenges, badges FROM users WHERE id = $1;`, uid)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) UpdateScore(ctx context.Context, uid uuid.UUID, score int) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET score = $1 WHERE id = $2;`, score, uid)
	if err != nil {
		return errors.New("updating user score error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) UpdateProgress(ctx context.Context, uid uuid.UUID, xp, level int, lastActivity time.Time) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET xp = $1, level = $2, last_activity = $3 WHERE id = $4;`,
		xp,
		level,
		lastActivity,
		uid,
	)
	if err != nil {
		return errors.New("updating user progress error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) UpdateLoginStats(ctx context.Context, uid uuid.UUID, lastLogin time.Time, loginStreak, totalLogins int) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET last_login = $1, login_streak = $2, total_logins = $3 WHERE id = $4;`,
		lastLogin,
		loginStreak,
		totalLogins,
		uid,
	)
	if err != nil {
		return errors.New("updating user login stats error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) AddBadges(ctx context.Context, uid uuid.UUID, badgeIDs []string) error {
	if len(badgeIDs) == 0 {
		return nil
	}
	// Set semantics enforced in SQL: only ids absent from the array are appended
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET badges = badges ||
		(SELECT COALESCE(array_agg(b), '{}') FROM unnest($1::text[]) AS b WHERE NOT b = ANY(badges)) WHERE id = $2;`,
		badgeIDs,
		uid,
	)
	if err != nil {
		return errors.New("adding user badges error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) AdjustCompletedChallenges(ctx context.Context, uid uuid.UUID, delta int) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET completed_challenges = GREATEST(0, completed_challenges + $1) WHERE id = $2;`,
		delta,
		uid,
	)
	if err != nil {
		return errors.New("adjusting completed challenges error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) TopByXP(ctx context.Context, limit int) ([]*entity.User, error) {
	users := make([]*entity.User, 0, limit)
	rows, err := ur.conn.Query(ctx, `SELECT id, name, score, xp, level FROM users ORDER BY xp DESC LIMIT $1;`, limit)
	if err != nil {
		return nil, errors.New("getting top users error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		u := entity.User{}
		err = rows.Scan(&u.ID, &u.Name, &u.Score, &u.XP, &u.Level)
		if err != nil {
			return nil, errors.New("unmarshalling top user error: " + err.Error())
		}
		users = append(users, &u)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return users, nil
}

func (ur *UsersRepository) Delete(ctx context.Context, uid uuid.UUID) error {
	ct, err := ur.conn.Exec(ctx, `DELETE FROM users WHERE id = $1;`, uid)
	if err != nil {
		return errors.New("deleting user error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.PasswordHash,
		&user.Score,
		&user.XP,
		&user.Level,
		&user.TotalLogins,
		&user.LoginStreak,
		&user.LastLogin,
		&user.LastActivity,
		&user.CompletedChallenges,
		&user.Badges,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
