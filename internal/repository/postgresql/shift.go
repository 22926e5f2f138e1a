package postgresql

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/madison-jay/edike-backend/internal/domain/schedule"
	"github.com/madison-jay/edike-backend/internal/pkg/database"
)

type shiftTypeRepositoryImpl struct {
	db *database.DB
}

func NewShiftTypeRepository(db *database.DB) schedule.ShiftTypeRepository {
	return &shiftTypeRepositoryImpl{db: db}
}

func scanShiftType(row pgx.Row) (schedule.ShiftType, error) {
	var st schedule.ShiftType
	err := row.Scan(&st.ID, &st.Name, &st.StartTime, &st.EndTime, &st.CreatedAt, &st.UpdatedAt)
	return st, err
}

func (r *shiftTypeRepositoryImpl) Create(ctx context.Context, shiftType schedule.ShiftType) (schedule.ShiftType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_types (id, name, start_time, end_time, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, shiftType.Name, shiftType.StartTime, shiftType.EndTime).
		Scan(&shiftType.ID, &shiftType.CreatedAt, &shiftType.UpdatedAt)
	if err != nil {
		return schedule.ShiftType{}, err
	}

	return shiftType, nil
}

func (r *shiftTypeRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.ShiftType, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, start_time, end_time, created_at, updated_at FROM shift_types WHERE id = $1`

	st, err := scanShiftType(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return schedule.ShiftType{}, schedule.ErrShiftTypeNotFound
	}
	return st, err
}

func (r *shiftTypeRepositoryImpl) List(ctx context.Context) ([]schedule.ShiftType, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, start_time, end_time, created_at, updated_at FROM shift_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []schedule.ShiftType
	for rows.Next() {
		st, err := scanShiftType(rows)
		if err != nil {
			return nil, err
		}
		types = append(types, st)
	}
	return types, rows.Err()
}

func (r *shiftTypeRepositoryImpl) Update(ctx context.Context, req schedule.UpdateShiftTypeRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []any{req.ID}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+itoa(len(args)))
	}

	if req.Name != nil {
		add("name", *req.Name)
	}
	if req.StartTime != nil {
		add("start_time", *req.StartTime)
	}
	if req.EndTime != nil {
		add("end_time", *req.EndTime)
	}

	query := `UPDATE shift_types SET ` + strings.Join(sets, ", ") + ` WHERE id = $1`

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return schedule.ErrShiftTypeNotFound
	}
	return nil
}

func (r *shiftTypeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shift_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return schedule.ErrShiftTypeNotFound
	}
	return nil
}

type shiftScheduleRepositoryImpl struct {
	db *database.DB
}

func NewShiftScheduleRepository(db *database.DB) schedule.ShiftScheduleRepository {
	return &shiftScheduleRepositoryImpl{db: db}
}

const shiftScheduleColumns = `
	ss.id, ss.employee_id, ss.shift_type_id, ss.start_date, ss.end_date,
	ss.created_at, ss.updated_at, st.name, st.start_time, st.end_time
`

func scanShiftSchedule(row pgx.Row) (schedule.ShiftSchedule, error) {
	var ss schedule.ShiftSchedule
	err := row.Scan(
		&ss.ID,
		&ss.EmployeeID,
		&ss.ShiftTypeID,
		&ss.StartDate,
		&ss.EndDate,
		&ss.CreatedAt,
		&ss.UpdatedAt,
		&ss.ShiftName,
		&ss.ShiftStartTime,
		&ss.ShiftEndTime,
	)
	return ss, err
}

func (r *shiftScheduleRepositoryImpl) Create(ctx context.Context, sched schedule.ShiftSchedule) (schedule.ShiftSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_schedules (id, employee_id, shift_type_id, start_date, end_date, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, sched.EmployeeID, sched.ShiftTypeID, sched.StartDate, sched.EndDate).
		Scan(&sched.ID, &sched.CreatedAt, &sched.UpdatedAt)
	if err != nil {
		return schedule.ShiftSchedule{}, err
	}

	return sched, nil
}

func (r *shiftScheduleRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.ShiftSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftScheduleColumns + `
		FROM shift_schedules ss
		INNER JOIN shift_types st ON ss.shift_type_id = st.id
		WHERE ss.id = $1
	`

	ss, err := scanShiftSchedule(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return schedule.ShiftSchedule{}, schedule.ErrShiftScheduleNotFound
	}
	return ss, err
}

func (r *shiftScheduleRepositoryImpl) List(ctx context.Context) ([]schedule.ShiftSchedule, error) {
	return r.listWhere(ctx, `TRUE`)
}

func (r *shiftScheduleRepositoryImpl) ListByEmployeeID(ctx context.Context, employeeID string) ([]schedule.ShiftSchedule, error) {
	return r.listWhere(ctx, `ss.employee_id = $1`, employeeID)
}

func (r *shiftScheduleRepositoryImpl) listWhere(ctx context.Context, where string, args ...any) ([]schedule.ShiftSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftScheduleColumns + `
		FROM shift_schedules ss
		INNER JOIN shift_types st ON ss.shift_type_id = st.id
		WHERE ` + where + `
		ORDER BY ss.start_date DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []schedule.ShiftSchedule
	for rows.Next() {
		ss, err := scanShiftSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, ss)
	}
	return schedules, rows.Err()
}

func (r *shiftScheduleRepositoryImpl) GetForEmployeeOnDate(ctx context.Context, employeeID string, date time.Time) (schedule.ShiftSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftScheduleColumns + `
		FROM shift_schedules ss
		INNER JOIN shift_types st ON ss.shift_type_id = st.id
		WHERE ss.employee_id = $1 AND ss.start_date <= $2 AND ss.end_date >= $2
		ORDER BY ss.start_date DESC
		LIMIT 1
	`

	ss, err := scanShiftSchedule(q.QueryRow(ctx, query, employeeID, date))
	if errors.Is(err, pgx.ErrNoRows) {
		return schedule.ShiftSchedule{}, schedule.ErrShiftScheduleNotFound
	}
	return ss, err
}

func (r *shiftScheduleRepositoryImpl) HasOverlap(ctx context.Context, employeeID string, start, end time.Time, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM shift_schedules
			WHERE employee_id = $1
			  AND start_date <= $3 AND end_date >= $2
			  AND ($4 = '' OR id <> $4::uuid)
		)
	`

	var overlaps bool
	err := q.QueryRow(ctx, query, employeeID, start, end, excludeID).Scan(&overlaps)
	return overlaps, err
}

func (r *shiftScheduleRepositoryImpl) Update(ctx context.Context, req schedule.UpdateShiftScheduleRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []any{req.ID}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+itoa(len(args)))
	}

	if req.ShiftTypeID != nil {
		add("shift_type_id", *req.ShiftTypeID)
	}
	if req.StartDate != nil {
		add("start_date", *req.StartDate)
	}
	if req.EndDate != nil {
		add("end_date", *req.EndDate)
	}

	query := `UPDATE shift_schedules SET ` + strings.Join(sets, ", ") + ` WHERE id = $1`

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return schedule.ErrShiftScheduleNotFound
	}
	return nil
}

func (r *shiftScheduleRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shift_schedules WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return schedule.ErrShiftScheduleNotFound
	}
	return nil
}
