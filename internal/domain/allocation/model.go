package allocation

import "time"

// MaxPerUser is the squad quota every user drafts up to.
const MaxPerUser = 5

// Allocation is the exclusive pairing of one player with one user.
type Allocation struct {
	ID        string `validate:"notblank"`
	UserID    string `validate:"notblank"`
	PlayerID  string `validate:"notblank"`
	Round     int    `validate:"gte=0"`
	Order     int    `validate:"gte=0"`
	CreatedAt time.Time
}
