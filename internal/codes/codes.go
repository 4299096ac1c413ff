package codes

// Process exit codes
const (
	Success         = 0
	Failure         = 1
	Unavailable     = 2
	BrokenInvariant = 3
)

// ExitCodes maps instant-clean exit codes to their descriptions
var ExitCodes = map[int]string{
	Success:         "Success",
	Failure:         "Sweep aborted",
	Unavailable:     "Cache path resolver unavailable",
	BrokenInvariant: "Default cache directory missing after resolution",
}

// IsSuccess returns true if the exit code indicates a completed run
func IsSuccess(code int) bool {
	return code == Success
}

// GetErrorMessage returns the description for a given exit code, or a generic message if unknown
func GetErrorMessage(code int) string {
	if msg, ok := ExitCodes[code]; ok {
		return msg
	}

	return "Unknown error"
}
