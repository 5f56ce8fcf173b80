package bodies

import (
	"fmt"
	"sort"
)

// StateSize is the dimension of a Cartesian state: three position and three
// velocity components.
const StateSize = 6

// Ephemeris supplies a body's Cartesian state as a function of time, in a
// frame shared by all ephemerides in one registry.
type Ephemeris interface {
	// CartesianState returns [x, y, z, vx, vy, vz] at the given epoch.
	CartesianState(epoch float64) ([]float64, error)
}

// ConstantEphemeris returns the same state at every epoch. Useful for frame
// origins and test fixtures.
type ConstantEphemeris struct {
	State [StateSize]float64
}

func (e *ConstantEphemeris) CartesianState(epoch float64) ([]float64, error) {
	out := make([]float64, StateSize)
	copy(out, e.State[:])
	return out, nil
}

// EphemerisRecord is one tabulated sample.
type EphemerisRecord struct {
	Epoch float64
	State [StateSize]float64
}

// TabulatedEphemeris interpolates linearly between tabulated samples.
// Queries outside the tabulated span fail rather than extrapolate.
type TabulatedEphemeris struct {
	records []EphemerisRecord
}

// NewTabulatedEphemeris builds an ephemeris from samples, sorting them by
// epoch. At least one sample is required.
func NewTabulatedEphemeris(records []EphemerisRecord) (*TabulatedEphemeris, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("tabulated ephemeris needs at least one record")
	}
	sorted := make([]EphemerisRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Epoch < sorted[j].Epoch })
	return &TabulatedEphemeris{records: sorted}, nil
}

func (e *TabulatedEphemeris) CartesianState(epoch float64) ([]float64, error) {
	recs := e.records
	first, last := recs[0].Epoch, recs[len(recs)-1].Epoch
	if epoch < first || epoch > last {
		return nil, fmt.Errorf("epoch %g outside tabulated span [%g, %g]", epoch, first, last)
	}

	// Index of the first record with Epoch >= epoch.
	i := sort.Search(len(recs), func(k int) bool { return recs[k].Epoch >= epoch })
	if recs[i].Epoch == epoch {
		out := make([]float64, StateSize)
		copy(out, recs[i].State[:])
		return out, nil
	}

	lo, hi := recs[i-1], recs[i]
	t := (epoch - lo.Epoch) / (hi.Epoch - lo.Epoch)
	out := make([]float64, StateSize)
	for k := 0; k < StateSize; k++ {
		out[k] = lo.State[k] + t*(hi.State[k]-lo.State[k])
	}
	return out, nil
}
