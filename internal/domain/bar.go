package domain

import "time"

// Bar represents a single period of market data together with the externally
// supplied forecast for that period.
type Bar struct {
	Date      time.Time // Start of the period
	Symbol    string    // Trading symbol
	Interval  string    // Bar interval (e.g., "1d", "1h")
	Open      float64   // Opening price
	High      float64   // Highest price
	Low       float64   // Lowest price
	Close     float64   // Closing price
	Volume    float64   // Trading volume
	Predicted float64   // Forecast value for this period (sign carries direction)
}
