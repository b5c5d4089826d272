package rating

// Carrier constants for dimensional rating.
const (
	// DimensionalVolume is the volume in cubic inches above which a package
	// is billed by dimensional weight.
	DimensionalVolume = 5184
	// DimensionalDivisor converts cubic inches to billable pounds.
	DimensionalDivisor = 194
	// ItemWeightLimit is the carrier's maximum weight for a single package,
	// in pounds.
	ItemWeightLimit = 150
)

// BillableDimensionalWeight returns the dimensional weight in pounds for a
// package of the given dimensions in inches, or 0 when the volume is at or
// under the dimensional threshold and actual weight applies.
func BillableDimensionalWeight(length, width, height float64) float64 {
	volume := length * width * height
	if volume <= DimensionalVolume {
		return 0
	}
	return volume / DimensionalDivisor
}

// ExceedsWeightLimit reports whether a package weight in pounds is over the
// carrier's single-package limit.
func ExceedsWeightLimit(weight float64) bool {
	return weight > ItemWeightLimit
}
