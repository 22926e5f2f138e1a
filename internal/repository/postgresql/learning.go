package postgresql

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/madison-jay/edike-backend/internal/domain/learning"
	"github.com/madison-jay/edike-backend/internal/pkg/database"
)

type learningModuleRepositoryImpl struct {
	db *database.DB
}

func NewLearningModuleRepository(db *database.DB) learning.ModuleRepository {
	return &learningModuleRepositoryImpl{db: db}
}

const learningModuleColumns = `
	m.id, m.title, m.description, m.created_by, m.created_at, m.updated_at,
	(SELECT COUNT(*) FROM lessons l WHERE l.module_id = m.id)
`

func scanLearningModule(row pgx.Row) (learning.Module, error) {
	var m learning.Module
	err := row.Scan(
		&m.ID,
		&m.Title,
		&m.Description,
		&m.CreatedBy,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.LessonCount,
	)
	return m, err
}

func (r *learningModuleRepositoryImpl) Create(ctx context.Context, module learning.Module) (learning.Module, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO learning_modules (id, title, description, created_by, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, module.Title, module.Description, module.CreatedBy).
		Scan(&module.ID, &module.CreatedAt, &module.UpdatedAt)
	if err != nil {
		return learning.Module{}, err
	}

	return module, nil
}

func (r *learningModuleRepositoryImpl) GetByID(ctx context.Context, id string) (learning.Module, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + learningModuleColumns + ` FROM learning_modules m WHERE m.id = $1`

	m, err := scanLearningModule(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return learning.Module{}, learning.ErrModuleNotFound
	}
	return m, err
}

func (r *learningModuleRepositoryImpl) List(ctx context.Context) ([]learning.Module, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + learningModuleColumns + ` FROM learning_modules m ORDER BY m.title`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var modules []learning.Module
	for rows.Next() {
		m, err := scanLearningModule(rows)
		if err != nil {
			return nil, err
		}
		modules = append(modules, m)
	}
	return modules, rows.Err()
}

func (r *learningModuleRepositoryImpl) Update(ctx context.Context, req learning.UpdateModuleRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []any{req.ID}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+itoa(len(args)))
	}

	if req.Title != nil {
		add("title", *req.Title)
	}
	if req.Description != nil {
		add("description", *req.Description)
	}

	query := `UPDATE learning_modules SET ` + strings.Join(sets, ", ") + ` WHERE id = $1`

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return learning.ErrModuleNotFound
	}
	return nil
}

func (r *learningModuleRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM learning_modules WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return learning.ErrModuleNotFound
	}
	return nil
}

type lessonRepositoryImpl struct {
	db *database.DB
}

func NewLessonRepository(db *database.DB) learning.LessonRepository {
	return &lessonRepositoryImpl{db: db}
}

func scanLesson(row pgx.Row) (learning.Lesson, error) {
	var l learning.Lesson
	err := row.Scan(&l.ID, &l.ModuleID, &l.Title, &l.Content, &l.Position, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

func (r *lessonRepositoryImpl) Create(ctx context.Context, lesson learning.Lesson) (learning.Lesson, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO lessons (id, module_id, title, content, position, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, lesson.ModuleID, lesson.Title, lesson.Content, lesson.Position).
		Scan(&lesson.ID, &lesson.CreatedAt, &lesson.UpdatedAt)
	if err != nil {
		return learning.Lesson{}, err
	}

	return lesson, nil
}

func (r *lessonRepositoryImpl) GetByID(ctx context.Context, id string) (learning.Lesson, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, module_id, title, content, position, created_at, updated_at
		FROM lessons WHERE id = $1
	`

	l, err := scanLesson(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return learning.Lesson{}, learning.ErrLessonNotFound
	}
	return l, err
}

func (r *lessonRepositoryImpl) ListByModuleID(ctx context.Context, moduleID string) ([]learning.Lesson, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, module_id, title, content, position, created_at, updated_at
		FROM lessons
		WHERE module_id = $1
		ORDER BY position
	`

	rows, err := q.Query(ctx, query, moduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lessons []learning.Lesson
	for rows.Next() {
		l, err := scanLesson(rows)
		if err != nil {
			return nil, err
		}
		lessons = append(lessons, l)
	}
	return lessons, rows.Err()
}

func (r *lessonRepositoryImpl) Update(ctx context.Context, req learning.UpdateLessonRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []any{req.ID}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+itoa(len(args)))
	}

	if req.Title != nil {
		add("title", *req.Title)
	}
	if req.Content != nil {
		add("content", *req.Content)
	}
	if req.Position != nil {
		add("position", *req.Position)
	}

	query := `UPDATE lessons SET ` + strings.Join(sets, ", ") + ` WHERE id = $1`

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return learning.ErrLessonNotFound
	}
	return nil
}

func (r *lessonRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM lessons WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return learning.ErrLessonNotFound
	}
	return nil
}

type questionRepositoryImpl struct {
	db *database.DB
}

func NewQuestionRepository(db *database.DB) learning.QuestionRepository {
	return &questionRepositoryImpl{db: db}
}

func scanQuestion(row pgx.Row) (learning.Question, error) {
	var qn learning.Question
	err := row.Scan(&qn.ID, &qn.LessonID, &qn.Prompt, &qn.Choices, &qn.AnswerIndex, &qn.CreatedAt, &qn.UpdatedAt)
	return qn, err
}

func (r *questionRepositoryImpl) Create(ctx context.Context, question learning.Question) (learning.Question, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO questions (id, lesson_id, prompt, choices, answer_index, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, question.LessonID, question.Prompt, question.Choices, question.AnswerIndex).
		Scan(&question.ID, &question.CreatedAt, &question.UpdatedAt)
	if err != nil {
		return learning.Question{}, err
	}

	return question, nil
}

func (r *questionRepositoryImpl) GetByID(ctx context.Context, id string) (learning.Question, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, lesson_id, prompt, choices, answer_index, created_at, updated_at
		FROM questions WHERE id = $1
	`

	qn, err := scanQuestion(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return learning.Question{}, learning.ErrQuestionNotFound
	}
	return qn, err
}

func (r *questionRepositoryImpl) ListByLessonID(ctx context.Context, lessonID string) ([]learning.Question, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, lesson_id, prompt, choices, answer_index, created_at, updated_at
		FROM questions
		WHERE lesson_id = $1
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, lessonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []learning.Question
	for rows.Next() {
		qn, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, qn)
	}
	return questions, rows.Err()
}

func (r *questionRepositoryImpl) Update(ctx context.Context, req learning.UpdateQuestionRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []any{req.ID}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+itoa(len(args)))
	}

	if req.Prompt != nil {
		add("prompt", *req.Prompt)
	}
	if req.Choices != nil {
		add("choices", req.Choices)
	}
	if req.AnswerIndex != nil {
		add("answer_index", *req.AnswerIndex)
	}

	query := `UPDATE questions SET ` + strings.Join(sets, ", ") + ` WHERE id = $1`

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return learning.ErrQuestionNotFound
	}
	return nil
}

func (r *questionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return learning.ErrQuestionNotFound
	}
	return nil
}
