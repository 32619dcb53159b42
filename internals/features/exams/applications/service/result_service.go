package service

import (
	"crypto/rand"
	"fmt"
	"math"
	"math/big"

	"gorm.io/gorm"

	model "eduadmin_backend/internals/features/exams/applications/model"
)

/* =========================================================
   Komputasi hasil ujian offline. Verify dan approve sama-sama
   lewat ComputeResult supaya angkanya tidak pernah beda.
   ========================================================= */

type Result struct {
	Obtained   float64 `json:"obtained"`
	Max        float64 `json:"max"`
	Percentage float64 `json:"percentage"`
	Grade      string  `json:"grade"`
}

// ComputeResult menjumlah teori + praktik lintas subject.
// Max nol memulangkan 0, bukan NaN.
func ComputeResult(marks []model.SubjectMark) Result {
	var obtained, max float64
	for _, m := range marks {
		obtained += m.ObtainedMarks + m.ObtainedPractical
		max += m.TotalMarks + m.PracticalMarks
	}
	var pct float64
	if max > 0 {
		pct = math.Round(obtained/max*100*100) / 100
	}
	return Result{
		Obtained:   obtained,
		Max:        max,
		Percentage: pct,
		Grade:      GradeFor(pct),
	}
}

func GradeFor(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 80:
		return "A"
	case percentage >= 70:
		return "B+"
	case percentage >= 60:
		return "B"
	case percentage >= 50:
		return "C"
	default:
		return "D"
	}
}

const (
	certNoMin = 10000000
	certNoMax = 99999999

	certNoMaxAttempts = 10
)

// randomCertificateNo menarik 8 digit uniform dari [10000000,99999999].
func randomCertificateNo() (string, error) {
	span := big.NewInt(certNoMax - certNoMin + 1)
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+certNoMin), nil
}

// GenerateCertificateNumber memulangkan nomor yang belum terpakai.
// Unique index tetap jadi penjaga terakhir saat dua approve balapan.
func GenerateCertificateNumber(db *gorm.DB) (string, error) {
	for i := 0; i < certNoMaxAttempts; i++ {
		no, err := randomCertificateNo()
		if err != nil {
			return "", err
		}
		var count int64
		if err := db.Model(&model.ExamApplication{}).
			Where("exam_application_certificate_no = ?", no).
			Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return no, nil
		}
	}
	return "", fmt.Errorf("certificate number space too crowded after %d attempts", certNoMaxAttempts)
}
