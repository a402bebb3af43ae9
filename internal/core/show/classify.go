package show

import (
	"time"

	"github.com/taibuivan/fyyur/internal/platform/constants"
	"github.com/taibuivan/fyyur/pkg/slice"
)

// ArtistAppearance is a show seen from its venue's page.
type ArtistAppearance struct {
	ArtistID        int    `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// VenueAppearance is a show seen from its artist's page.
type VenueAppearance struct {
	VenueID        int    `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// Schedule is the past/upcoming split of an entity's shows.
type Schedule[T any] struct {
	PastShows          []T `json:"past_shows"`
	UpcomingShows      []T `json:"upcoming_shows"`
	PastShowsCount     int `json:"past_shows_count"`
	UpcomingShowsCount int `json:"upcoming_shows_count"`
}

// Listing is one row of the upcoming shows page.
type Listing struct {
	VenueID         int    `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	VenueImageLink  string `json:"venue_image_link"`
	ArtistID        int    `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

/*
Partition splits shows relative to now.

A show is past iff its start time is strictly before now. A show starting
exactly at now is upcoming. Input order is kept in both outputs.
*/
func Partition(shows []*Show, now time.Time) (past, upcoming []*Show) {
	past = make([]*Show, 0)
	upcoming = make([]*Show, 0)

	for _, s := range shows {
		if s.StartTime.Before(now) {
			past = append(past, s)
			continue
		}
		upcoming = append(upcoming, s)
	}

	return past, upcoming
}

// ForVenue classifies a venue's shows and projects each onto its artist.
func ForVenue(shows []*Show, now time.Time) Schedule[ArtistAppearance] {
	return schedule(shows, now, func(s *Show) ArtistAppearance {
		return ArtistAppearance{
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       s.StartTime.Format(constants.ShowTimeLayout),
		}
	})
}

// ForArtist classifies an artist's shows and projects each onto its venue.
func ForArtist(shows []*Show, now time.Time) Schedule[VenueAppearance] {
	return schedule(shows, now, func(s *Show) VenueAppearance {
		return VenueAppearance{
			VenueID:        s.VenueID,
			VenueName:      s.VenueName,
			VenueImageLink: s.VenueImageLink,
			StartTime:      s.StartTime.Format(constants.ShowTimeLayout),
		}
	})
}

// ToListings projects shows for the listing page.
func ToListings(shows []*Show) []Listing {
	return slice.Map(shows, func(s *Show) Listing {
		return Listing{
			VenueID:         s.VenueID,
			VenueName:       s.VenueName,
			VenueImageLink:  s.VenueImageLink,
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       s.StartTime.Format(constants.ShowListTimeLayout),
		}
	})
}

func schedule[T any](shows []*Show, now time.Time, project func(*Show) T) Schedule[T] {
	past, upcoming := Partition(shows, now)

	return Schedule[T]{
		PastShows:          slice.Map(past, project),
		UpcomingShows:      slice.Map(upcoming, project),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}
