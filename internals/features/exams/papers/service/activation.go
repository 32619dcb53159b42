package service

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "eduadmin_backend/internals/features/exams/papers/model"
)

/*
Invarian aktivasi paper: sebuah paper hanya boleh "active" bila SEMUA
subject yang dikonfigurasi punya ≥1 soal ter-upload.

  - Auto-activate: dijalankan setelah upload/import soal selesai, dan
    opportunistik saat halaman detail paper dibaca.
  - Deactivate: aksi manual admin.
  - Re-activate manual: ditolak kecuali cek yang sama lolos lagi.
*/

// DecodeSubjectConfigs baca JSON exam_paper_subjects.
func DecodeSubjectConfigs(p *model.ExamPaper) ([]model.SubjectConfig, error) {
	if len(p.ExamPaperSubjects) == 0 {
		return nil, nil
	}
	var configs []model.SubjectConfig
	if err := json.Unmarshal(p.ExamPaperSubjects, &configs); err != nil {
		return nil, err
	}
	return configs, nil
}

// AllSubjectsCovered murni: true bila setiap subject terkonfigurasi punya
// minimal satu soal. Paper tanpa konfigurasi subject tidak pernah covered.
func AllSubjectsCovered(configs []model.SubjectConfig, questionCounts map[uuid.UUID]int64) bool {
	if len(configs) == 0 {
		return false
	}
	for _, cfg := range configs {
		if questionCounts[cfg.SubjectID] < 1 {
			return false
		}
	}
	return true
}

// QuestionCountsBySubject hitung soal per subject untuk satu paper.
func QuestionCountsBySubject(db *gorm.DB, paperID uuid.UUID) (map[uuid.UUID]int64, error) {
	type row struct {
		SubjectID uuid.UUID `gorm:"column:question_subject_id"`
		N         int64     `gorm:"column:n"`
	}
	var rows []row
	err := db.Model(&model.Question{}).
		Select("question_subject_id, COUNT(*) AS n").
		Where("question_paper_id = ?", paperID).
		Group("question_subject_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uuid.UUID]int64, len(rows))
	for _, r := range rows {
		counts[r.SubjectID] = r.N
	}
	return counts, nil
}

// CanActivate cek invarian terhadap isi DB saat ini.
func CanActivate(db *gorm.DB, p *model.ExamPaper) (bool, error) {
	configs, err := DecodeSubjectConfigs(p)
	if err != nil {
		return false, err
	}
	counts, err := QuestionCountsBySubject(db, p.ExamPaperID)
	if err != nil {
		return false, err
	}
	return AllSubjectsCovered(configs, counts), nil
}

// RecheckActivation auto-activate bila invarian terpenuhi dan paper masih
// inactive. Mengembalikan true bila status berubah.
func RecheckActivation(db *gorm.DB, p *model.ExamPaper) (bool, error) {
	if p.ExamPaperStatus == model.PaperStatusActive {
		return false, nil
	}
	ok, err := CanActivate(db, p)
	if err != nil || !ok {
		return false, err
	}
	if err := db.Model(p).Update("exam_paper_status", model.PaperStatusActive).Error; err != nil {
		return false, err
	}
	p.ExamPaperStatus = model.PaperStatusActive
	return true, nil
}
