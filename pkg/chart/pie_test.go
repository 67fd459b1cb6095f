package chart

import (
	"strings"
	"testing"
)

func TestTokenDistributionChartDeterministic(t *testing.T) {
	distribution := map[string]float64{
		"team":           20,
		"publicSale":     40,
		"ecosystem":      25,
		"stakingRewards": 15,
	}

	first, err := TokenDistributionChart(distribution, "AUR")
	if err != nil {
		t.Fatalf("first render error: %v", err)
	}
	second, err := TokenDistributionChart(distribution, "AUR")
	if err != nil {
		t.Fatalf("second render error: %v", err)
	}

	if first != second {
		t.Error("identical input should yield byte-identical output")
	}
}

func TestTokenDistributionChartDataURI(t *testing.T) {
	dataURL, err := TokenDistributionChart(map[string]float64{"team": 100}, "AUR")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !strings.HasPrefix(dataURL, "data:image/png;base64,") {
		t.Errorf("unexpected data URI prefix: %.40s", dataURL)
	}
}

func TestTokenDistributionChartRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name         string
		distribution map[string]float64
	}{
		{"empty", map[string]float64{}},
		{"nil", nil},
		{"zero total", map[string]float64{"team": 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := TokenDistributionChart(tt.distribution, "AUR"); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestHumanizeCategory(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single word", "team", "team"},
		{"camel case", "stakingRewards", "staking Rewards"},
		{"multiple boundaries", "publicSaleAllocation", "public Sale Allocation"},
		{"already capitalized", "Treasury", "Treasury"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HumanizeCategory(tt.input); got != tt.expected {
				t.Errorf("HumanizeCategory(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"whole number", 20, "20"},
		{"fraction", 12.5, "12.5"},
		{"trailing zeros trimmed", 40.50, "40.5"},
		{"within distribution tolerance", 40.005, "40.005"},
		{"zero", 0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPercent(tt.input); got != tt.expected {
				t.Errorf("FormatPercent(%v) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
