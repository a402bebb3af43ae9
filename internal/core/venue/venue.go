package venue

import (
	"github.com/taibuivan/fyyur/internal/core/genre"
	"github.com/taibuivan/fyyur/internal/core/show"
)

// Venue is a place that hosts shows.
//
// GenreIDs is the genre set written by create and update. Genres is the same
// set as read back from the store, in the order the links were created.
type Venue struct {
	ID                 int           `json:"id"`
	Name               string        `json:"name"`
	Slug               string        `json:"slug"`
	City               string        `json:"city"`
	State              string        `json:"state"`
	Address            string        `json:"address"`
	Phone              string        `json:"phone"`
	Website            string        `json:"website"`
	ImageLink          string        `json:"image_link"`
	FacebookLink       string        `json:"facebook_link"`
	SeekingTalent      bool          `json:"seeking_talent"`
	SeekingDescription string        `json:"seeking_description"`
	GenreIDs           []int         `json:"-"`
	Genres             []genre.Genre `json:"genres"`
}

// Input is the submitted venue form.
type Input struct {
	Name               string `json:"name"`
	City               string `json:"city"`
	State              string `json:"state"`
	Address            string `json:"address"`
	Phone              string `json:"phone"`
	Website            string `json:"website"`
	ImageLink          string `json:"image_link"`
	FacebookLink       string `json:"facebook_link"`
	SeekingTalent      bool   `json:"seeking_talent"`
	SeekingDescription string `json:"seeking_description"`
	Genres             []int  `json:"genres"`
}

// Detail is the venue page: the record plus its classified shows.
type Detail struct {
	*Venue
	show.Schedule[show.ArtistAppearance]
}

// SearchResult is the response of a name search.
type SearchResult struct {
	Count int      `json:"count"`
	Data  []*Venue `json:"data"`
}

const (
	FieldName               = "name"
	FieldCity               = "city"
	FieldState              = "state"
	FieldAddress            = "address"
	FieldPhone              = "phone"
	FieldWebsite            = "website"
	FieldImageLink          = "image_link"
	FieldFacebookLink       = "facebook_link"
	FieldSeekingDescription = "seeking_description"
)
