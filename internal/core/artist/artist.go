package artist

import (
	"github.com/taibuivan/fyyur/internal/core/genre"
	"github.com/taibuivan/fyyur/internal/core/show"
)

// Artist is a performer that can be booked at venues.
type Artist struct {
	ID                 int           `json:"id"`
	Name               string        `json:"name"`
	Slug               string        `json:"slug"`
	City               string        `json:"city"`
	State              string        `json:"state"`
	Phone              string        `json:"phone"`
	Website            string        `json:"website"`
	ImageLink          string        `json:"image_link"`
	FacebookLink       string        `json:"facebook_link"`
	SeekingVenues      bool          `json:"seeking_venues"`
	SeekingDescription string        `json:"seeking_description"`
	GenreIDs           []int         `json:"-"`
	Genres             []genre.Genre `json:"genres"`
}

// Input is the submitted artist form.
type Input struct {
	Name               string `json:"name"`
	City               string `json:"city"`
	State              string `json:"state"`
	Phone              string `json:"phone"`
	Website            string `json:"website"`
	ImageLink          string `json:"image_link"`
	FacebookLink       string `json:"facebook_link"`
	SeekingVenues      bool   `json:"seeking_venues"`
	SeekingDescription string `json:"seeking_description"`
	Genres             []int  `json:"genres"`
}

// Detail is the artist page: the record plus its classified shows.
type Detail struct {
	*Artist
	show.Schedule[show.VenueAppearance]
}

type SearchResult struct {
	Count int       `json:"count"`
	Data  []*Artist `json:"data"`
}

const (
	FieldName               = "name"
	FieldCity               = "city"
	FieldState              = "state"
	FieldPhone              = "phone"
	FieldWebsite            = "website"
	FieldImageLink          = "image_link"
	FieldFacebookLink       = "facebook_link"
	FieldSeekingDescription = "seeking_description"
)
