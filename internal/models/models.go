package models

// User is an account that owns exercise log entries.
type User struct {
	ID       string `bson:"_id" json:"_id"`
	Username string `bson:"username" json:"username"`
}

// LogEntry is a single exercise record belonging to exactly one user.
// Date holds the display rendering (e.g. "Fri Mar 01 2024"); that string is
// what gets persisted and served.
type LogEntry struct {
	ID          string `bson:"_id" json:"-"`
	UserID      string `bson:"user_id" json:"-"`
	Description string `bson:"description" json:"description"`
	Duration    int    `bson:"duration" json:"duration"`
	Date        string `bson:"date" json:"date"`
}
