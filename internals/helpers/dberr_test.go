package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestIsDuplicateKey(t *testing.T) {
	if !IsDuplicateKey(gorm.ErrDuplicatedKey) {
		t.Error("translated gorm error must be detected")
	}
	if !IsDuplicateKey(fmt.Errorf("create: %w", gorm.ErrDuplicatedKey)) {
		t.Error("wrapped translated error must be detected")
	}
	if !IsDuplicateKey(&pgconn.PgError{Code: "23505"}) {
		t.Error("raw pg unique violation must be detected")
	}
	if IsDuplicateKey(&pgconn.PgError{Code: "23503"}) {
		t.Error("foreign key violation is not a duplicate")
	}
	if IsDuplicateKey(errors.New("boom")) {
		t.Error("arbitrary error is not a duplicate")
	}
	if IsDuplicateKey(nil) {
		t.Error("nil is not a duplicate")
	}
}

func TestDuplicateConstraint(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "idx_students_student_id_number"}
	if got := DuplicateConstraint(err); got != "idx_students_student_id_number" {
		t.Errorf("DuplicateConstraint = %q, want constraint name", got)
	}
	if got := DuplicateConstraint(fmt.Errorf("create: %w", err)); got != "idx_students_student_id_number" {
		t.Errorf("wrapped DuplicateConstraint = %q, want constraint name", got)
	}
	if got := DuplicateConstraint(&pgconn.PgError{Code: "23503", ConstraintName: "fk_x"}); got != "" {
		t.Errorf("foreign key violation gave %q, want empty", got)
	}
	if got := DuplicateConstraint(gorm.ErrDuplicatedKey); got != "" {
		t.Errorf("translated error without pg detail gave %q, want empty", got)
	}
	if got := DuplicateConstraint(nil); got != "" {
		t.Errorf("nil gave %q, want empty", got)
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(gorm.ErrRecordNotFound) {
		t.Error("record-not-found must be detected")
	}
	if IsNotFound(errors.New("boom")) {
		t.Error("arbitrary error is not not-found")
	}
}
