package dto

import (
	model "eduadmin_backend/internals/features/institute/centers/model"
)

type CreateCenterRequest struct {
	CenterCode    string `json:"center_code" validate:"required,min=2,max=32"`
	CenterName    string `json:"center_name" validate:"required,min=3"`
	CenterEmail   string `json:"center_email" validate:"omitempty,email"`
	CenterPhone   string `json:"center_phone"`
	CenterAddress string `json:"center_address"`
	CenterCity    string `json:"center_city"`
}

type UpdateCenterRequest struct {
	CenterName     *string `json:"center_name"`
	CenterEmail    *string `json:"center_email" validate:"omitempty,email"`
	CenterPhone    *string `json:"center_phone"`
	CenterAddress  *string `json:"center_address"`
	CenterCity     *string `json:"center_city"`
	CenterIsActive *bool   `json:"center_is_active"`
}

func (r CreateCenterRequest) ToModel() *model.Center {
	return &model.Center{
		CenterCode:     r.CenterCode,
		CenterName:     r.CenterName,
		CenterEmail:    r.CenterEmail,
		CenterPhone:    r.CenterPhone,
		CenterAddress:  r.CenterAddress,
		CenterCity:     r.CenterCity,
		CenterIsActive: true,
	}
}

func (r UpdateCenterRequest) Apply(m *model.Center) {
	if r.CenterName != nil {
		m.CenterName = *r.CenterName
	}
	if r.CenterEmail != nil {
		m.CenterEmail = *r.CenterEmail
	}
	if r.CenterPhone != nil {
		m.CenterPhone = *r.CenterPhone
	}
	if r.CenterAddress != nil {
		m.CenterAddress = *r.CenterAddress
	}
	if r.CenterCity != nil {
		m.CenterCity = *r.CenterCity
	}
	if r.CenterIsActive != nil {
		m.CenterIsActive = *r.CenterIsActive
	}
}
