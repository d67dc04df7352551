package model

import (
	"time"
)

type Expense struct {
	ID          string    `json:"_id,omitempty" bson:"_id,omitempty"`
	ExpenseName string    `json:"expenseName" bson:"expenseName"`
	Category    string    `json:"category" bson:"category"`
	Amount      float64   `json:"amount" bson:"amount"`
	Date        Timestamp `json:"date" bson:"date"`
	Reason      string    `json:"reason,omitempty" bson:"reason,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

type ExpenseInput struct {
	ExpenseName string     `json:"expenseName" validate:"required"`
	Category    string     `json:"category" validate:"required"`
	Amount      *float64   `json:"amount" validate:"required"`
	Date        *Timestamp `json:"date" validate:"required"`
	Reason      *string    `json:"reason"`
}

type ExpenseUpdate struct {
	ExpenseName *string    `json:"expenseName,omitempty" bson:"expenseName,omitempty" validate:"omitnil,min=1"`
	Category    *string    `json:"category,omitempty" bson:"category,omitempty" validate:"omitnil,min=1"`
	Amount      *float64   `json:"amount,omitempty" bson:"amount,omitempty"`
	Date        *Timestamp `json:"date,omitempty" bson:"date,omitempty"`
	Reason      *string    `json:"reason,omitempty" bson:"reason,omitempty"`
}

func (u *ExpenseUpdate) IsEmpty() bool {
	return u.ExpenseName == nil && u.Category == nil && u.Amount == nil &&
		u.Date == nil && u.Reason == nil
}
