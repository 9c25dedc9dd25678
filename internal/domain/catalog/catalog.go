package catalog

import (
	"encoding/json"
	"time"
)

type Actor struct {
	ActorID    int32     `json:"actorId"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	LastUpdate time.Time `json:"lastUpdate"`
}

// ActorCategoryFilms carries the output of the get_actor_film_in_category
// stored function; titles arrives as a JSON aggregate straight from the
// database.
type ActorCategoryFilms struct {
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Titles    json.RawMessage `json:"titles"`
}

type CategoryFilmCount struct {
	CategoryName string `json:"categoryName"`
	Count        int64  `json:"count"`
}

type RentalCount struct {
	Title string `json:"title"`
	Count int64  `json:"count"`
}
