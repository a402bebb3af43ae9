package schema

// GenreTable represents the '"Genre"' table
type GenreTable struct {
	Table string
	ID    string
	Name  string
	Slug  string
}

// Genre is the schema definition for "Genre"
var Genre = GenreTable{
	Table: `"Genre"`,
	ID:    "id",
	Name:  "name",
	Slug:  "slug",
}

func (t GenreTable) Columns() []string {
	return []string{t.ID, t.Name, t.Slug}
}
