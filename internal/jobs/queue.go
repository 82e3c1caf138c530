package jobs

// JobQueue provides an abstraction for enqueueing background jobs
type JobQueue interface {
	// EnqueueSync schedules a season refresh for the player's position.
	// It fails fast instead of blocking when the queue is full.
	EnqueueSync(playerID int64, year int, position string) error
}
