package database

// EntryRow mirrors one row of the entries table.
type EntryRow struct {
	ID           int64
	Timestamp    string
	Stress       int
	Energy       int
	Productivity int
}
