package show

import "time"

// Show is a booking of an Artist at a Venue. The counterpart names and image
// links are resolved by the store when a show is read; they are not written.
type Show struct {
	ID        int       `json:"id"`
	StartTime time.Time `json:"start_time"`
	ArtistID  int       `json:"artist_id"`
	VenueID   int       `json:"venue_id"`

	ArtistName      string `json:"artist_name,omitempty"`
	ArtistImageLink string `json:"artist_image_link,omitempty"`
	VenueName       string `json:"venue_name,omitempty"`
	VenueImageLink  string `json:"venue_image_link,omitempty"`
}

// Input is the submitted show form. StartTime is parsed by the service.
type Input struct {
	ArtistID  int    `json:"artist_id"`
	VenueID   int    `json:"venue_id"`
	StartTime string `json:"start_time"`
}

const (
	FieldArtistID  = "artist_id"
	FieldVenueID   = "venue_id"
	FieldStartTime = "start_time"
)
