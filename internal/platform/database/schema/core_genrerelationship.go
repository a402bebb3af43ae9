package schema

// GenreRelationshipTable represents a genre association table.
// Both association tables share this shape: a surrogate key, the genre and the owner.
type GenreRelationshipTable struct {
	Table   string
	ID      string
	GenreID string
	OwnerID string
}

// VenueGenre is the schema definition for venue_genre_relationship
var VenueGenre = GenreRelationshipTable{
	Table:   "venue_genre_relationship",
	ID:      "id",
	GenreID: "genre_id",
	OwnerID: "venue_id",
}

// ArtistGenre is the schema definition for artist_genre_relationship
var ArtistGenre = GenreRelationshipTable{
	Table:   "artist_genre_relationship",
	ID:      "id",
	GenreID: "genre_id",
	OwnerID: "artist_id",
}
