package politician

import id "papertrail/pkg/domain"

// MinSearchLength is the shortest name fragment that triggers a search.
const MinSearchLength = 2

// Politician is a legislator profile.
type Politician struct {
	ID        id.PoliticianID
	FirstName string
	LastName  string
	Party     string
	State     string
	Role      *string
	IsActive  bool
}
