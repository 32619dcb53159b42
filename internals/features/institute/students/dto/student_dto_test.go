package dto

import (
	"regexp"
	"testing"
)

func TestDeriveFeeLedger(t *testing.T) {
	req := RegisterStudentRequest{
		StudentCourseFee:    10000,
		StudentAdmissionFee: 1500,
		StudentExamFee:      500,
		StudentDiscount:     2000,
		StudentInstallments: 1,
	}
	ledger := req.DeriveFeeLedger()
	if ledger.TotalFee != 10000 {
		t.Errorf("total = %v, want 10000", ledger.TotalFee)
	}
	if ledger.PayableAmount != 10000 {
		t.Errorf("payable = %v, want 10000", ledger.PayableAmount)
	}
}

func TestDeriveFeeLedgerInstallments(t *testing.T) {
	req := RegisterStudentRequest{
		StudentCourseFee:    9000,
		StudentInstallments: 3,
	}
	ledger := req.DeriveFeeLedger()
	if ledger.PayableAmount != 3000 {
		t.Errorf("payable = %v, want 3000 (first of 3 installments)", ledger.PayableAmount)
	}
	if ledger.Installments != 3 {
		t.Errorf("installments = %d, want 3", ledger.Installments)
	}
}

func TestDeriveFeeLedgerDiscountFloor(t *testing.T) {
	req := RegisterStudentRequest{
		StudentCourseFee: 1000,
		StudentDiscount:  5000,
	}
	ledger := req.DeriveFeeLedger()
	if ledger.TotalFee != 0 || ledger.PayableAmount != 0 {
		t.Errorf("ledger = %+v, want zeroed amounts", ledger)
	}
}

func TestDeriveFeeLedgerZeroInstallmentsDefaultsToOne(t *testing.T) {
	req := RegisterStudentRequest{StudentCourseFee: 500}
	if got := req.DeriveFeeLedger().Installments; got != 1 {
		t.Errorf("installments = %d, want 1", got)
	}
}

var studentIDPattern = regexp.MustCompile(`^STU-\d{8}-\d{4}$`)

func TestGenerateStudentIDNumberFormat(t *testing.T) {
	for i := 0; i < 50; i++ {
		if id := GenerateStudentIDNumber(); !studentIDPattern.MatchString(id) {
			t.Fatalf("id %q does not match STU-YYYYMMDD-NNNN", id)
		}
	}
}
