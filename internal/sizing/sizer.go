// Package sizing computes order quantities from available capital.
package sizing

// MaxQuantity returns the largest whole quantity affordable with the given
// cash at the given reference price ("all-in" sizing). Degenerate inputs
// (non-positive cash or price) yield zero, which downstream code treats as
// "no trade" rather than an error.
func MaxQuantity(cash, price float64) int64 {
	if cash <= 0 || price <= 0 {
		return 0
	}
	return int64(cash / price)
}
