package models

// Interest is a lookup-table entry users can attach to their profile
// (at most three per user).
type Interest struct {
	ID   uint   `json:"id" gorm:"primarykey"`
	Name string `json:"name" gorm:"size:50;uniqueIndex;not null"`
}

func (Interest) TableName() string { return "interests" }
