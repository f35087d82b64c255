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

type TasksRepository struct {
	conn PgConnection
}

func NewTasksRepo(cfg DBConfig) *TasksRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for tasksRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for tasksRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &TasksRepository{
		conn: pool,
	}
}

func NewTasksRepoWithConn(conn PgConnection) *TasksRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for tasksRepo: " + err.Error())
	}
	return &TasksRepository{
		conn: conn,
	}
}

func (tr *TasksRepository) Create(ctx context.Context, task *entity.Task) (uuid.UUID, error) {
	var id uuid.UUID
	row := tr.conn.QueryRow(ctx, `INSERT INTO tasks (user_id, challenge_id, title, description, points)
		VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		task.UserID,
		task.ChallengeID,
		task.Title,
		task.Description,
		task.Points,
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
		return uuid.UUID{}, errors.New("creating task db error: " + err.Error())
	}
	return id, nil
}

func (tr *TasksRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	var task entity.Task
	task.ID = id
	row := tr.conn.QueryRow(ctx, `SELECT user_id, challenge_id, title, description, points, is_completed,
		completed_at, created_at, updated_at FROM tasks WHERE id = $1;`, id)
	if err := row.Scan(&task.UserID, &task.ChallengeID, &task.Title, &task.Description, &task.Points,
		&task.IsCompleted, &task.CompletedAt, &task.CreatedAt, &task.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTaskNotFound
		}
		return nil, errors.New("getting task by id error: " + err.Error())
	}
	return &task, nil
}

func (tr *TasksRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Task, error) {
	rows, err := tr.conn.Query(ctx, `SELECT id, user_id, challenge_id, title, description, points, is_completed,
		completed_at, created_at, updated_at FROM tasks WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3;`,
		uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting tasks by uid error: " + err.Error())
	}
	return scanTasks(rows)
}

func (tr *TasksRepository) GetByUserAndChallenge(ctx context.Context, uid, challengeID uuid.UUID) ([]*entity.Task, error) {
	rows, err := tr.conn.Query(ctx, `SELECT id, user_id, challenge_id, title, description, points, is_completed,
		completed_at, created_at, updated_at FROM tasks WHERE user_id = $1 AND challenge_id = $2;`, uid, challengeID)
	if err != nil {
		return nil, errors.New("getting challenge tasks by uid error: " + err.Error())
	}
	return scanTasks(rows)
}

func (tr *TasksRepository) GetTemplatesByChallenge(ctx context.Context, challengeID uuid.UUID) ([]*entity.Task, error) {
	rows, err := tr.conn.Query(ctx, `SELECT id, user_id, challenge_id, title, description, points, is_completed,
		completed_at, created_at, updated_at FROM tasks WHERE challenge_id = $1 AND user_id IS NULL ORDER BY created_at;`, challengeID)
	if err != nil {
		return nil, errors.New("getting challenge template tasks error: " + err.Error())
	}
	return scanTasks(rows)
}

func (tr *TasksRepository) Update(ctx context.Context, task *entity.Task) error {
	ct, err := tr.conn.Exec(ctx, `UPDATE tasks SET title = $1, description = $2, points = $3, updated_at = NOW() WHERE id = $4;`,
		task.Title, task.Description, task.Points, task.ID,
	)
	if err != nil {
		return errors.New("error updating task: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}

func (tr *TasksRepository) SetCompletion(ctx context.Context, id uuid.UUID, completed bool, completedAt *time.Time) error {
	ct, err := tr.conn.Exec(ctx, `UPDATE tasks SET is_completed = $1, completed_at = $2, updated_at = NOW() WHERE id = $3;`,
		completed, completedAt, id,
	)
	if err != nil {
		return errors.New("error updating task completion: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}

func (tr *TasksRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := tr.conn.Exec(ctx, `DELETE FROM tasks WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting task: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}

func (tr *TasksRepository) SumCompletedPoints(ctx context.Context, uid uuid.UUID) (int, error) {
	row := tr.conn.QueryRow(ctx, `SELECT COALESCE(SUM(points), 0) FROM tasks WHERE user_id = $1 AND is_completed = TRUE;`, uid)
	var sum int
	if err := row.Scan(&sum); err != nil {
		return 0, errors.New("summing completed points error: " + err.Error())
	}
	return sum, nil
}

func (tr *TasksRepository) CountCompleted(ctx context.Context, uid uuid.UUID) (int, error) {
	row := tr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM tasks WHERE user_id = $1 AND is_completed = TRUE;`, uid)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("counting completed tasks error: " + err.Error())
	}
	return count, nil
}

func (tr *TasksRepository) GetCompletionDates(ctx context.Context, uid uuid.UUID) ([]time.Time, error) {
	rows, err := tr.conn.Query(ctx, `SELECT DISTINCT date_trunc('day', completed_at AT TIME ZONE 'UTC')
		FROM tasks WHERE user_id = $1 AND is_completed = TRUE AND completed_at IS NOT NULL;`, uid)
	if err != nil {
		return nil, errors.New("getting completion dates error: " + err.Error())
	}
	defer rows.Close()
	dates := make([]time.Time, 0, 8)
	for rows.Next() {
		var d time.Time
		if err = rows.Scan(&d); err != nil {
			return nil, errors.New("unmarshalling completion date error: " + err.Error())
		}
		dates = append(dates, d)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return dates, nil
}

func (tr *TasksRepository) HasEarlyCompletion(ctx context.Context, uid uuid.UUID) (bool, error) {
	row := tr.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM tasks WHERE user_id = $1 AND is_completed = TRUE
		AND completed_at IS NOT NULL AND EXTRACT(HOUR FROM completed_at) < 8);`, uid)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, errors.New("inspecting early completion error: " + err.Error())
	}
	return exists, nil
}

func scanTasks(rows pgx.Rows) ([]*entity.Task, error) {
	defer rows.Close()
	tasks := make([]*entity.Task, 0)
	for rows.Next() {
		t := entity.Task{}
		err := rows.Scan(&t.ID, &t.UserID, &t.ChallengeID, &t.Title, &t.Description, &t.Points,
			&t.IsCompleted, &t.CompletedAt, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling task error: " + err.Error())
		}
		tasks = append(tasks, &t)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return tasks, nil
}
