package venue

// Area is the venues of one (city, state) pair.
type Area struct {
	City   string   `json:"city"`
	State  string   `json:"state"`
	Venues []*Venue `json:"venues"`
}

type locale struct {
	city  string
	state string
}

/*
GroupByLocale groups venues by exact (city, state).

Areas appear in the order their first venue appears in the input, and venues
keep their input order within an area. Matching is case sensitive, as the
stored values are.
*/
func GroupByLocale(venues []*Venue) []Area {
	areas := make([]Area, 0)
	index := make(map[locale]int)

	for _, v := range venues {
		key := locale{city: v.City, state: v.State}

		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, Area{City: v.City, State: v.State, Venues: make([]*Venue, 0, 1)})
		}

		areas[i].Venues = append(areas[i].Venues, v)
	}

	return areas
}
