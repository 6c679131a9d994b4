package tracker

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the data saved by a Tracker
type Summary struct {
	N         int
	Mean, Std float64
	Min, Max  float64
}

// Summarize returns the Summary of data. The standard deviation of a
// single value is 0.
func Summarize(data []float64) (Summary, error) {
	if len(data) == 0 {
		return Summary{}, fmt.Errorf("summarize: no data")
	}

	s := Summary{
		N:   len(data),
		Min: floats.Min(data),
		Max: floats.Max(data),
	}
	if len(data) == 1 {
		s.Mean = data[0]
		return s, nil
	}
	s.Mean, s.Std = stat.MeanStdDev(data, nil)
	return s, nil
}

func (s Summary) String() string {
	return fmt.Sprintf("n: %v  |  mean: %.4f  |  std: %.4f  |  min: %.4f  "+
		"|  max: %.4f", s.N, s.Mean, s.Std, s.Min, s.Max)
}
