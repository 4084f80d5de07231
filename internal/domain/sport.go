package domain

// Sport represents an immutable reference sport offered by clubs
type Sport struct {
	ID   int64
	Name string
}
