package schema

// ShowTable represents the '"Show"' table
type ShowTable struct {
	Table     string
	ID        string
	StartTime string
	ArtistID  string
	VenueID   string
}

// Show is the schema definition for "Show"
var Show = ShowTable{
	Table:     `"Show"`,
	ID:        "id",
	StartTime: "start_time",
	ArtistID:  "artist_id",
	VenueID:   "venue_id",
}
