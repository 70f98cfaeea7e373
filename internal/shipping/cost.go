package shipping

const (
	baseCost  = 5.0
	costPerKg = 2.0
)

// Cost returns the shipping cost for a consignment weight in kilograms.
// Pure function; callers must reject non-positive weight before calling.
func Cost(weight float64) float64 {
	return baseCost + costPerKg*weight
}
