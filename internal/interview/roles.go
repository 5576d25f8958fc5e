package interview

// Roles is the set of target roles the coach supports.
var Roles = []string{
	"React Developer",
	"Backend Developer",
	"Full Stack Developer",
	"Data Scientist",
	"Product Manager",
}

// Question count bounds for one interview round.
const (
	MinQuestions     = 3
	MaxQuestions     = 10
	DefaultQuestions = 5
)

// IsSupportedRole reports whether role is one of Roles.
func IsSupportedRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// NormalizeCount applies the default and validates the bounds.
// Returns false when count is out of range.
func NormalizeCount(count int) (int, bool) {
	if count == 0 {
		return DefaultQuestions, true
	}
	if count < MinQuestions || count > MaxQuestions {
		return 0, false
	}
	return count, true
}
