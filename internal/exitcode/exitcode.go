package exitcode

const (
	Success        = 0
	UsageError     = 1
	ExtractError   = 2
	TransformError = 3
	DBConnError    = 4
	LoadError      = 5
)
