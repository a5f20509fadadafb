package utils

import "math"

// Percent converte uma fração em percentual inteiro arredondado (0.874 -> 87)
func Percent(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f * 100)
}
