package storage

import (
	"sync"

	id "papertrail/pkg/domain"
)

// Dataset is an in-memory copy of the five tables. It backs the in-memory stores
// used by service and handler tests, and keeps foreign keys honest: rows that
// reference a missing parent are rejected at insert time.
type Dataset struct {
	mu          sync.RWMutex
	politicians []PoliticianRow
	donors      []DonorRow
	bills       []BillRow
	donations   []DonationRow
	votes       []VoteRow
}

func NewDataset() *Dataset {
	return &Dataset{}
}

// AddPolitician inserts a row, assigning the next id when ID is zero.
func (d *Dataset) AddPolitician(p PoliticianRow) PoliticianRow {
	d.mu.Lock()
	defer d.mu.Unlock()
	if p.ID == 0 {
		p.ID = id.PoliticianID(nextID(len(d.politicians), func(i int) int64 { return int64(d.politicians[i].ID) }))
	}
	d.politicians = append(d.politicians, p)
	return p
}

// AddDonor inserts a row, assigning the next id when ID is zero.
func (d *Dataset) AddDonor(r DonorRow) DonorRow {
	d.mu.Lock()
	defer d.mu.Unlock()
	if r.ID == 0 {
		r.ID = id.DonorID(nextID(len(d.donors), func(i int) int64 { return int64(d.donors[i].ID) }))
	}
	d.donors = append(d.donors, r)
	return r
}

// AddBill inserts a row, assigning the next id when ID is zero.
func (d *Dataset) AddBill(b BillRow) BillRow {
	d.mu.Lock()
	defer d.mu.Unlock()
	if b.ID == 0 {
		b.ID = id.BillID(nextID(len(d.bills), func(i int) int64 { return int64(d.bills[i].ID) }))
	}
	b.Subjects = cloneStrings(b.Subjects)
	d.bills = append(d.bills, b)
	return b
}

// AddDonation inserts a row. It panics when the donor or politician does not exist.
func (d *Dataset) AddDonation(r DonationRow) DonationRow {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.donorLocked(r.DonorID); !ok {
		panic("storage: donation references unknown donor " + r.DonorID.String())
	}
	if _, ok := d.politicianLocked(r.PoliticianID); !ok {
		panic("storage: donation references unknown politician " + r.PoliticianID.String())
	}
	if r.Amount < 0 {
		panic("storage: donation amount must be non-negative")
	}
	if r.ID == 0 {
		r.ID = nextID(len(d.donations), func(i int) int64 { return d.donations[i].ID })
	}
	d.donations = append(d.donations, r)
	return r
}

// AddVote inserts a row. It panics when the politician or bill does not exist.
func (d *Dataset) AddVote(v VoteRow) VoteRow {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.politicianLocked(v.PoliticianID); !ok {
		panic("storage: vote references unknown politician " + v.PoliticianID.String())
	}
	if _, ok := d.billLocked(v.BillID); !ok {
		panic("storage: vote references unknown bill " + v.BillID.String())
	}
	if v.ID == 0 {
		v.ID = id.VoteID(nextID(len(d.votes), func(i int) int64 { return int64(d.votes[i].ID) }))
	}
	d.votes = append(d.votes, v)
	return v
}

// Read runs fn with a consistent view of all tables. fn must not retain or mutate the slices.
func (d *Dataset) Read(fn func(t Tables)) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	fn(Tables{
		Politicians: d.politicians,
		Donors:      d.donors,
		Bills:       d.bills,
		Donations:   d.donations,
		Votes:       d.votes,
	})
}

// Tables is a read-only view handed to Read callbacks.
type Tables struct {
	Politicians []PoliticianRow
	Donors      []DonorRow
	Bills       []BillRow
	Donations   []DonationRow
	Votes       []VoteRow
}

// DonorsByID indexes donors by id.
func (t Tables) DonorsByID() map[id.DonorID]DonorRow {
	m := make(map[id.DonorID]DonorRow, len(t.Donors))
	for _, r := range t.Donors {
		m[r.ID] = r
	}
	return m
}

// PoliticiansByID indexes politicians by id.
func (t Tables) PoliticiansByID() map[id.PoliticianID]PoliticianRow {
	m := make(map[id.PoliticianID]PoliticianRow, len(t.Politicians))
	for _, r := range t.Politicians {
		m[r.ID] = r
	}
	return m
}

// BillsByID indexes bills by id.
func (t Tables) BillsByID() map[id.BillID]BillRow {
	m := make(map[id.BillID]BillRow, len(t.Bills))
	for _, r := range t.Bills {
		m[r.ID] = r
	}
	return m
}

func (d *Dataset) politicianLocked(pid id.PoliticianID) (PoliticianRow, bool) {
	for _, p := range d.politicians {
		if p.ID == pid {
			return p, true
		}
	}
	return PoliticianRow{}, false
}

func (d *Dataset) donorLocked(did id.DonorID) (DonorRow, bool) {
	for _, r := range d.donors {
		if r.ID == did {
			return r, true
		}
	}
	return DonorRow{}, false
}

func (d *Dataset) billLocked(bid id.BillID) (BillRow, bool) {
	for _, b := range d.bills {
		if b.ID == bid {
			return b, true
		}
	}
	return BillRow{}, false
}

func nextID(n int, idAt func(int) int64) int64 {
	var maxID int64
	for i := 0; i < n; i++ {
		if v := idAt(i); v > maxID {
			maxID = v
		}
	}
	return maxID + 1
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string{}, s...)
}
