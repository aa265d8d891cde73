package region

import "fmt"

// Dataset is an immutable, ordered collection of Regions keyed by code.
//
// Construction copies every Region (including its history slice) so later
// mutation of the caller's slices cannot leak into analyses. Iteration
// order is the insertion order and is deterministic, which downstream
// consumers (Monte Carlo draws in particular) rely on.
type Dataset struct {
	regions []Region
	index   map[string]int
}

// NewDataset validates and snapshots the given regions.
//
// Errors: validation errors from Region.Validate (wrapping ErrMissingField,
// ErrNegativeValue, ErrUnsortedHistory) and ErrDuplicateCode.
//
// Complexity: O(total history length).
func NewDataset(regions []Region) (*Dataset, error) {
	ds := &Dataset{
		regions: make([]Region, 0, len(regions)),
		index:   make(map[string]int, len(regions)),
	}
	for _, r := range regions {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if _, dup := ds.index[r.Code]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCode, r.Code)
		}
		cp := r
		cp.History = append([]RatePoint(nil), r.History...)
		ds.index[cp.Code] = len(ds.regions)
		ds.regions = append(ds.regions, cp)
	}
	return ds, nil
}

// Len reports the number of regions.
func (d *Dataset) Len() int { return len(d.regions) }

// Regions returns a copy of the region slice in deterministic order.
func (d *Dataset) Regions() []Region {
	return append([]Region(nil), d.regions...)
}

// Codes returns all region codes in deterministic order.
func (d *Dataset) Codes() []string {
	out := make([]string, len(d.regions))
	for i, r := range d.regions {
		out[i] = r.Code
	}
	return out
}

// ByCode looks up a region by code.
func (d *Dataset) ByCode(code string) (Region, error) {
	i, ok := d.index[code]
	if !ok {
		return Region{}, fmt.Errorf("%w: %q", ErrUnknownRegion, code)
	}
	return d.regions[i], nil
}

// TotalDeaths sums CurrentDeaths over all regions.
func (d *Dataset) TotalDeaths() float64 {
	var total float64
	for _, r := range d.regions {
		total += r.CurrentDeaths
	}
	return total
}

// Map builds a new Dataset by applying fn to every region, preserving
// order and codes. Used by what-if analyses that need a perturbed copy
// (e.g. scaled budgets or a diminished deaths base) without touching the
// original. fn receives a copy and must not change Code; the derived
// dataset reuses the source's index.
func (d *Dataset) Map(fn func(Region) Region) *Dataset {
	out := &Dataset{
		regions: make([]Region, len(d.regions)),
		index:   d.index,
	}
	for i, r := range d.regions {
		mapped := fn(r)
		mapped.Code = r.Code
		out.regions[i] = mapped
	}
	return out
}
