package entity

// Todo is a titled task with a completion flag, persisted in the todos table.
type Todo struct {
	ID        int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string `json:"title" gorm:"not null"`
	Completed bool   `json:"completed" gorm:"not null"`
}

func (Todo) TableName() string {
	return "todos"
}
