package model

// TaskStatus represents the status of a queued download task
type TaskStatus string

const (
	// TaskStatusPending means the task is queued but not started
	TaskStatusPending TaskStatus = "pending"

	// TaskStatusDownloading means the backend is working on the task
	TaskStatusDownloading TaskStatus = "downloading"

	// TaskStatusCompleted means the task finished successfully
	TaskStatusCompleted TaskStatus = "completed"

	// TaskStatusFailed means the task failed with an error
	TaskStatusFailed TaskStatus = "failed"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is being processed or waits for processing
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusPending || ts == TaskStatusDownloading
}

// IsFinished returns true if the task is in a finished state (completed or failed)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusFailed
}

// IsKnown reports whether the status is one of the four queue states
func (ts TaskStatus) IsKnown() bool {
	return ts.IsActive() || ts.IsFinished()
}

// SubTaskStatus represents the status of one track inside a batch task
type SubTaskStatus string

const (
	SubTaskPending     SubTaskStatus = "pending"
	SubTaskDownloading SubTaskStatus = "downloading"
	SubTaskCompleted   SubTaskStatus = "completed"
	SubTaskFailed      SubTaskStatus = "failed"
	SubTaskSkipped     SubTaskStatus = "skipped"
)

// Badge returns the short marker shown next to a track row
func (s SubTaskStatus) Badge() string {
	switch s {
	case SubTaskPending:
		return "PENDING"
	case SubTaskCompleted:
		return "DONE"
	case SubTaskFailed:
		return "FAIL"
	case SubTaskSkipped:
		return "SKIP"
	default:
		return ">>>"
	}
}

// LoginStatus is the state of the backend's account login process
type LoginStatus string

const (
	LoginIdle           LoginStatus = "idle"
	LoginAuthenticating LoginStatus = "authenticating"
	LoginWaiting2FA     LoginStatus = "waiting_2fa"
	LoginSuccess        LoginStatus = "success"
	LoginFailed         LoginStatus = "failed"
)
