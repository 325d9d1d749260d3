package utils

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"signalTraderBot/internal/domain"
)

var csvHeader = []string{"date", "symbol", "interval", "open", "high", "low", "close", "volume", "predicted"}

// WriteBarsToCSV saves bars, including the predicted column, to filename.
func WriteBarsToCSV(bars []*domain.Bar, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	writer.Write(csvHeader)
	for _, b := range bars {
		writer.Write([]string{
			b.Date.Format(time.RFC3339),
			b.Symbol,
			b.Interval,
			strconv.FormatFloat(b.Open, 'f', -1, 64),
			strconv.FormatFloat(b.High, 'f', -1, 64),
			strconv.FormatFloat(b.Low, 'f', -1, 64),
			strconv.FormatFloat(b.Close, 'f', -1, 64),
			strconv.FormatFloat(b.Volume, 'f', -1, 64),
			strconv.FormatFloat(b.Predicted, 'f', -1, 64),
		})
	}
	return writer.Error()
}

// ReadBarsFromCSV loads bars written by WriteBarsToCSV. The header row is
// required and must match the expected column order.
func ReadBarsFromCSV(filename string) ([]*domain.Bar, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s is empty", filename)
	}
	if len(records[0]) != len(csvHeader) || records[0][0] != csvHeader[0] {
		return nil, fmt.Errorf("%s has an unexpected header %v", filename, records[0])
	}

	bars := make([]*domain.Bar, 0, len(records)-1)
	for i, rec := range records[1:] {
		bar, err := parseBarRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", filename, i+2, err)
		}
		bars = append(bars, bar)
	}
	return bars, nil
}

func parseBarRecord(rec []string) (*domain.Bar, error) {
	if len(rec) != len(csvHeader) {
		return nil, fmt.Errorf("expected %d columns, got %d", len(csvHeader), len(rec))
	}
	date, err := time.Parse(time.RFC3339, rec[0])
	if err != nil {
		return nil, fmt.Errorf("parsing date '%s': %w", rec[0], err)
	}
	bar := &domain.Bar{Date: date, Symbol: rec[1], Interval: rec[2]}

	fields := []struct {
		name string
		dst  *float64
		raw  string
	}{
		{"open", &bar.Open, rec[3]},
		{"high", &bar.High, rec[4]},
		{"low", &bar.Low, rec[5]},
		{"close", &bar.Close, rec[6]},
		{"volume", &bar.Volume, rec[7]},
		{"predicted", &bar.Predicted, rec[8]},
	}
	for _, f := range fields {
		v, err := strconv.ParseFloat(f.raw, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %s '%s': %w", f.name, f.raw, err)
		}
		*f.dst = v
	}
	return bar, nil
}
