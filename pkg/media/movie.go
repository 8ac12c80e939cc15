package media

// Movie is a standalone named media item. Unlike Series, a movie's name
// is compared case-sensitively.
type Movie struct {
	Name  string
	Title string
	Year  int
}

// NewMovie creates a movie with the given name.
func NewMovie(name string) *Movie {
	return &Movie{Name: name}
}

func (*Movie) item() {}

// Equal reports whether two movies share the same name.
func (m *Movie) Equal(o *Movie) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.Name == o.Name
}
