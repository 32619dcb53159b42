package service

import (
	"testing"

	"github.com/google/uuid"

	model "eduadmin_backend/internals/features/exams/papers/model"
)

func TestAllSubjectsCovered(t *testing.T) {
	s1 := uuid.New()
	s2 := uuid.New()
	s3 := uuid.New()
	configs := []model.SubjectConfig{
		{SubjectID: s1, QuestionCount: 10},
		{SubjectID: s2, QuestionCount: 5},
		{SubjectID: s3, QuestionCount: 8},
	}

	if !AllSubjectsCovered(configs, map[uuid.UUID]int64{s1: 1, s2: 3, s3: 12}) {
		t.Error("all subjects have questions, expected covered")
	}
	if AllSubjectsCovered(configs, map[uuid.UUID]int64{s1: 1, s2: 3}) {
		t.Error("one subject has no questions, expected not covered")
	}
	if AllSubjectsCovered(configs, map[uuid.UUID]int64{s1: 1, s2: 3, s3: 0}) {
		t.Error("zero count must not count as covered")
	}
}

func TestAllSubjectsCoveredEmptyConfigs(t *testing.T) {
	// Paper tanpa konfigurasi subject tidak boleh auto-aktif.
	if AllSubjectsCovered(nil, map[uuid.UUID]int64{uuid.New(): 5}) {
		t.Error("paper without subject configs must not be coverable")
	}
}
