package dimtypes

import (
	"errors"
	"fmt"

	"github.com/LMerkin/DimTypes/encodings"
	"github.com/LMerkin/DimTypes/logger"
)

var (
	// ErrTooManyDims signals a dimension declared beyond the configured count.
	ErrTooManyDims = errors.New("dimtypes: too many dimensions declared")

	// ErrTooManyUnits signals a unit whose selector would not fit a packed field.
	ErrTooManyUnits = errors.New("dimtypes: too many units declared")

	// ErrDuplicateName signals a dimension or unit name declared twice.
	ErrDuplicateName = errors.New("dimtypes: duplicate name")

	// ErrUnknownUnit signals a unit index outside a dimension's declarations.
	ErrUnknownUnit = errors.New("dimtypes: unknown unit")

	// ErrSystemMismatch signals an operation over quantities minted by
	// different Systems.
	ErrSystemMismatch = errors.New("dimtypes: operands belong to different systems")

	// ErrDimensionMismatch signals an addition, subtraction or comparison of
	// quantities of different dimensions.
	ErrDimensionMismatch = errors.New("dimtypes: operands have different dimensions")
)

// Dim identifies a dimension declared on a System.
type Dim uint

// Unit identifies a unit within its dimension's declarations; Unit 0 is
// always the dimension's fundamental unit.
type Unit uint

type unitDef struct {
	name  string
	scale float64 // conversion factor to the dimension's fundamental unit
}

type dimension struct {
	name  string
	units []unitDef
}

// A System holds the declared dimensions and units and mints Quantities over
// them. It is the runtime analog of a fixed compile-time unit system: declare
// everything up front, then treat the System as immutable. A System is safe
// for concurrent use once declarations are complete.
type System struct {
	enc  *encodings.Encoding
	dims []dimension
}

// NewSystem creates an empty System over the configuration with the given
// number of independent dimensions (7, 8 or 9).
func NewSystem(maxDims uint) (*System, error) {
	enc, err := encodings.New(maxDims)
	if err != nil {
		return nil, err
	}
	return &System{enc: enc}, nil
}

// MustNewSystem is like NewSystem but panics on an unsupported configuration.
func MustNewSystem(maxDims uint) *System {
	s, err := NewSystem(maxDims)
	if err != nil {
		panic(err)
	}
	return s
}

// Encoding returns the packing configuration the System is built on.
func (s *System) Encoding() *encodings.Encoding {
	return s.enc
}

// AddDimension declares the next fundamental dimension together with its
// fundamental unit (conversion factor 1 by definition).
func (s *System) AddDimension(name, fundUnit string) (Dim, error) {
	if uint(len(s.dims)) >= s.enc.MaxDims {
		return 0, fmt.Errorf("%w: %q (MaxDims=%d)", ErrTooManyDims, name, s.enc.MaxDims)
	}
	for _, d := range s.dims {
		if d.name == name {
			return 0, fmt.Errorf("%w: dimension %q", ErrDuplicateName, name)
		}
	}
	s.dims = append(s.dims, dimension{
		name:  name,
		units: []unitDef{{name: fundUnit, scale: 1.0}},
	})
	dim := Dim(len(s.dims) - 1)

	log := logger.Logger()
	log.Debug().
		Str("dimension", name).
		Str("fundUnit", fundUnit).
		Uint("dim", uint(dim)).
		Msg("declared dimension")
	return dim, nil
}

// MustAddDimension is like AddDimension but panics on error.
func (s *System) MustAddDimension(name, fundUnit string) Dim {
	d, err := s.AddDimension(name, fundUnit)
	if err != nil {
		panic(err)
	}
	return d
}

// AddUnit declares an extra unit of an already-declared dimension. The scale
// is the unit's value expressed in the dimension's fundamental unit (e.g.
// 1000 for "km" over a fundamental "m").
func (s *System) AddUnit(dim Dim, name string, scale float64) (Unit, error) {
	if uint(dim) >= uint(len(s.dims)) {
		return 0, fmt.Errorf("%w: dim %d", ErrUnknownUnit, dim)
	}
	d := &s.dims[dim]
	for _, u := range d.units {
		if u.name == name {
			return 0, fmt.Errorf("%w: unit %q of %q", ErrDuplicateName, name, d.name)
		}
	}
	// Unit selectors share the exponent fields' packing, so they must fit the
	// field mask. PMod distinct units per dimension is not a real constraint.
	if uint64(len(d.units)) > s.enc.PMask {
		return 0, fmt.Errorf("%w: unit %q of %q", ErrTooManyUnits, name, d.name)
	}
	d.units = append(d.units, unitDef{name: name, scale: scale})
	unit := Unit(len(d.units) - 1)

	log := logger.Logger()
	log.Debug().
		Str("dimension", d.name).
		Str("unit", name).
		Float64("scale", scale).
		Msg("declared unit")
	return unit, nil
}

// MustAddUnit is like AddUnit but panics on error.
func (s *System) MustAddUnit(dim Dim, name string, scale float64) Unit {
	u, err := s.AddUnit(dim, name, scale)
	if err != nil {
		panic(err)
	}
	return u
}

// Qty mints a quantity of the given dimension (exponent 1) expressed in the
// given declared unit.
func (s *System) Qty(mag float64, dim Dim, unit Unit) Quantity {
	s.checkUnit(dim, unit)
	return Quantity{
		mag:   mag,
		dims:  s.enc.DimExp(uint(dim)),
		units: s.enc.MkUnit(uint(dim), uint(unit)),
		sys:   s,
	}
}

// Dimless lifts a plain number into a dimension-less Quantity.
func (s *System) Dimless(mag float64) Quantity {
	return Quantity{mag: mag, sys: s}
}

func (s *System) checkUnit(dim Dim, unit Unit) {
	if uint(dim) >= uint(len(s.dims)) || uint(unit) >= uint(len(s.dims[dim].units)) {
		panic(fmt.Errorf("%w: dim %d unit %d", ErrUnknownUnit, dim, unit))
	}
}

func (s *System) unitScale(dim Dim, unit Unit) float64 {
	s.checkUnit(dim, unit)
	return s.dims[dim].units[unit].scale
}

func (s *System) unitName(dim Dim, unit Unit) string {
	s.checkUnit(dim, unit)
	return s.dims[dim].units[unit].name
}
