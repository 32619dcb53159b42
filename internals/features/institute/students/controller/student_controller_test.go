package controller

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

// Cabang nama-constraint tidak menyentuh database, jadi db nil aman.
func TestIsIDNumberCollision(t *testing.T) {
	idErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_students_student_id_number"}
	if !isIDNumberCollision(nil, idErr, "a@b.co") {
		t.Error("id-number constraint must be treated as a retryable collision")
	}

	emailErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_students_student_email"}
	if isIDNumberCollision(nil, emailErr, "a@b.co") {
		t.Error("email constraint is a user duplicate, not a collision")
	}
}
