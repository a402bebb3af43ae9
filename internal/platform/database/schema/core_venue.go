package schema

// VenueTable represents the '"Venue"' table
type VenueTable struct {
	Table              string
	ID                 string
	Name               string
	Slug               string
	City               string
	State              string
	Address            string
	Phone              string
	Website            string
	ImageLink          string
	FacebookLink       string
	SeekingTalent      string
	SeekingDescription string
}

// Venue is the schema definition for "Venue"
var Venue = VenueTable{
	Table:              `"Venue"`,
	ID:                 "id",
	Name:               "name",
	Slug:               "slug",
	City:               "city",
	State:              "state",
	Address:            "address",
	Phone:              "phone",
	Website:            "website",
	ImageLink:          "image_link",
	FacebookLink:       "facebook_link",
	SeekingTalent:      "seeking_talent",
	SeekingDescription: "seeking_description",
}

// Mutable lists the columns written by create and update, in bind order.
func (t VenueTable) Mutable() []string {
	return []string{
		t.Name, t.Slug, t.City, t.State, t.Address, t.Phone, t.Website,
		t.ImageLink, t.FacebookLink, t.SeekingTalent, t.SeekingDescription,
	}
}
