package repository

import (
	"context"

	"github.com/coursehub/coursehub-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StudentRepository handles student data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int) (*model.Student, error) {
	s := &model.Student{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, index_number, first_name, last_name, email, created_at
		 FROM students WHERE id = $1`, id,
	).Scan(&s.ID, &s.IndexNumber, &s.FirstName, &s.LastName, &s.Email, &s.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return s, nil
}

// Upsert inserts a student or refreshes the name and email of the student
// holding the same index number.
func (r *StudentRepository) Upsert(ctx context.Context, s *model.Student) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO students (index_number, first_name, last_name, email)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (index_number) DO UPDATE
		 SET first_name = EXCLUDED.first_name, last_name = EXCLUDED.last_name, email = EXCLUDED.email
		 RETURNING id, created_at`,
		s.IndexNumber, s.FirstName, s.LastName, s.Email,
	).Scan(&s.ID, &s.CreatedAt)
	return translate(err)
}
