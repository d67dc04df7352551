package model

import (
	"time"
)

const (
	SalaryHourly     = "hourly"
	SalaryMonthly    = "monthly"
	SalaryWeekly     = "weekly"
	SalaryCommission = "commission"
)

type Salary struct {
	ID           string    `json:"_id,omitempty" bson:"_id,omitempty"`
	EmployeeName string    `json:"employeeName" bson:"employeeName"`
	SalaryType   string    `json:"salaryType" bson:"salaryType"`
	Amount       float64   `json:"amount" bson:"amount"`
	Date         Timestamp `json:"date" bson:"date"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

type SalaryInput struct {
	EmployeeName string     `json:"employeeName" validate:"required"`
	SalaryType   string     `json:"salaryType" validate:"required,oneof=hourly monthly weekly commission"`
	Amount       *float64   `json:"amount" validate:"required"`
	Date         *Timestamp `json:"date"`
}

type SalaryUpdate struct {
	EmployeeName *string    `json:"employeeName,omitempty" bson:"employeeName,omitempty" validate:"omitnil,min=1"`
	SalaryType   *string    `json:"salaryType,omitempty" bson:"salaryType,omitempty" validate:"omitnil,oneof=hourly monthly weekly commission"`
	Amount       *float64   `json:"amount,omitempty" bson:"amount,omitempty"`
	Date         *Timestamp `json:"date,omitempty" bson:"date,omitempty"`
}

func (u *SalaryUpdate) IsEmpty() bool {
	return u.EmployeeName == nil && u.SalaryType == nil && u.Amount == nil && u.Date == nil
}
