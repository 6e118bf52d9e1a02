package branch

import "time"

type Branch struct {
	ID               int64
	Name             string
	ManagerID        *int64
	ManagerStartedAt *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
