package shipment

import (
	"errors"
	"fmt"

	"shipcore/internal/pkg/errs"
	"shipcore/internal/pkg/guard"
)

// ErrPackageIsNotConstructed is returned when attempting to use an improperly initialized Package.
var ErrPackageIsNotConstructed = errs.NewValueIsRequiredError(
	"package must be created via NewPackage constructor")

// Package describes the physical profile of the parcel being shipped:
// dimensions in centimeters and weight in kilograms. It is an immutable
// value object; all dimensions and the weight must be strictly positive.
type Package struct { //nolint:recvcheck //using for validation
	lengthCm float64
	widthCm  float64
	heightCm float64
	weightKg float64
	guard    guard.ConstructorGuard
}

// NewPackage creates a new Package with the given dimensions and weight.
// Returns a validation error if any value is not strictly positive.
func NewPackage(lengthCm, widthCm, heightCm, weightKg float64) (Package, error) {
	pkg := Package{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pkg.setDimension("lengthCm", &pkg.lengthCm, lengthCm),
		pkg.setDimension("widthCm", &pkg.widthCm, widthCm),
		pkg.setDimension("heightCm", &pkg.heightCm, heightCm),
		pkg.setDimension("weightKg", &pkg.weightKg, weightKg),
	); err != nil {
		return Package{}, err
	}

	return pkg, nil
}

// Validate checks if the Package was properly constructed using NewPackage.
func (p Package) Validate() error {
	return p.guard.Validate(ErrPackageIsNotConstructed)
}

// LengthCm returns the parcel length in centimeters.
func (p Package) LengthCm() float64 {
	return p.lengthCm
}

// WidthCm returns the parcel width in centimeters.
func (p Package) WidthCm() float64 {
	return p.widthCm
}

// HeightCm returns the parcel height in centimeters.
func (p Package) HeightCm() float64 {
	return p.heightCm
}

// WeightKg returns the parcel weight in kilograms.
func (p Package) WeightKg() float64 {
	return p.weightKg
}

// VolumeM3 returns the parcel volume in cubic meters.
func (p Package) VolumeM3() float64 {
	const cm3PerM3 = 1_000_000
	return p.lengthCm * p.widthCm * p.heightCm / cm3PerM3
}

// String returns a human-readable representation of the package.
// This method implements the fmt.Stringer interface.
func (p Package) String() string {
	return fmt.Sprintf("Package(%gx%gx%gcm, %gkg)", p.lengthCm, p.widthCm, p.heightCm, p.weightKg)
}

// setDimension validates and sets a single positive dimension.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during construction.
func (p *Package) setDimension(name string, field *float64, value float64) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name,
			fmt.Errorf("%g is not greater than 0", value))
	}
	*field = value
	return nil
}
