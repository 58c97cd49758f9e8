package model

// ProcessStatus mirrors the scheduler states a process can be in.
type ProcessStatus int8

const (
	StatusUnknown ProcessStatus = iota
	StatusForking
	StatusRunnable
	StatusSleeping
	StatusStopped
	StatusZombie
	StatusInterruptWait
	StatusLockWait
)

var statusNames = [...]string{
	StatusUnknown:       "unknown",
	StatusForking:       "forking",
	StatusRunnable:      "runnable",
	StatusSleeping:      "sleeping",
	StatusStopped:       "stopped",
	StatusZombie:        "zombie",
	StatusInterruptWait: "interrupt-wait",
	StatusLockWait:      "lock-wait",
}

func (s ProcessStatus) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return statusNames[StatusUnknown]
	}
	return statusNames[s]
}

// ParseProcessStatus maps a short state name ("R", "sleep", "zombie", ...)
// to a ProcessStatus. Unrecognized names yield StatusUnknown.
func ParseProcessStatus(s string) ProcessStatus {
	switch s {
	case "I", "idle", "fork", "forking":
		return StatusForking
	case "R", "running", "runnable":
		return StatusRunnable
	case "S", "sleep", "sleeping":
		return StatusSleeping
	case "T", "t", "stop", "stopped":
		return StatusStopped
	case "Z", "zombie":
		return StatusZombie
	case "D", "W", "wait":
		return StatusInterruptWait
	case "L", "lock":
		return StatusLockWait
	default:
		return StatusUnknown
	}
}
