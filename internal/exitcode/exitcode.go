package exitcode

const (
	Success      = 0
	UsageError   = 1
	Rejected     = 2 // submission rejected (encoding, inference or lookup error)
	StartupError = 3 // artifacts missing, corrupt or inconsistent
)
