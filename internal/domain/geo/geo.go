package geo

import "time"

type City struct {
	CityID     int32     `json:"cityId"`
	City       string    `json:"city"`
	CountryID  int32     `json:"countryId"`
	LastUpdate time.Time `json:"lastUpdate"`
}

type StoreCountryCount struct {
	Country string `json:"country"`
	Count   int64  `json:"count"`
}
