package donor

import id "papertrail/pkg/domain"

// MinSearchLength is the shortest name fragment that triggers a search.
const MinSearchLength = 3

// Donor is an individual or organization that contributes to campaigns.
type Donor struct {
	ID        id.DonorID
	Name      string
	DonorType string
	Employer  *string
	State     *string
}
