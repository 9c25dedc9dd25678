package dto

import (
	"fmt"
	"strings"
)

type CreateCityRequest struct {
	City      string `json:"city"`
	CountryID int32  `json:"countryId"`
}

func (r *CreateCityRequest) Validate() error {
	if strings.TrimSpace(r.City) == "" {
		return fmt.Errorf("city cannot be empty")
	}
	if r.CountryID <= 0 {
		return fmt.Errorf("countryId must be a positive number")
	}
	return nil
}
