package models

// Sports managed by the facility.
const (
	SportCricket    = "cricket"
	SportPickleball = "pickleball"
)

// ValidSport reports whether s names a managed sport.
func ValidSport(s string) bool {
	return s == SportCricket || s == SportPickleball
}
