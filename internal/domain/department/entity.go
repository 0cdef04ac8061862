package department

import "time"

type Department struct {
	ID          string
	Name        string
	Description *string
	LeaderID    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
