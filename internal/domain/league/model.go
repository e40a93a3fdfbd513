package league

import "fmt"

// League groups the clubs that play each other in one season.
type League struct {
	ID          string
	Name        string
	CountryCode string
	Season      string
	IsDefault   bool
}

func (l League) Validate() error {
	switch {
	case l.ID == "":
		return fmt.Errorf("league id is required")
	case l.Name == "":
		return fmt.Errorf("league name is required")
	case l.Season == "":
		return fmt.Errorf("league season is required")
	}

	return nil
}
