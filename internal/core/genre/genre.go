package genre

// Genre is an entry of the fixed music genre catalog. Rows are created by the
// seed migration and never changed by the application.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

const (
	FieldGenres = "genres"
)
