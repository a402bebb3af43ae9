package schema

// ArtistTable represents the '"Artist"' table
type ArtistTable struct {
	Table              string
	ID                 string
	Name               string
	Slug               string
	City               string
	State              string
	Phone              string
	Website            string
	ImageLink          string
	FacebookLink       string
	SeekingVenues      string
	SeekingDescription string
}

// Artist is the schema definition for "Artist"
var Artist = ArtistTable{
	Table:              `"Artist"`,
	ID:                 "id",
	Name:               "name",
	Slug:               "slug",
	City:               "city",
	State:              "state",
	Phone:              "phone",
	Website:            "website",
	ImageLink:          "image_link",
	FacebookLink:       "facebook_link",
	SeekingVenues:      "seeking_venues",
	SeekingDescription: "seeking_description",
}

// Mutable lists the columns written by create and update, in bind order.
func (t ArtistTable) Mutable() []string {
	return []string{
		t.Name, t.Slug, t.City, t.State, t.Phone, t.Website,
		t.ImageLink, t.FacebookLink, t.SeekingVenues, t.SeekingDescription,
	}
}
