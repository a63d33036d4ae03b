// Package weather answers current-conditions lookups from a fixed
// in-memory table. No live weather API is consulted; the table is
// constant for the process lifetime, so lookups are pure and safe to
// call from any goroutine.
package weather

import (
	"fmt"
	"math"
	"strings"
)

// Units selects the temperature scale of a report.
type Units string

const (
	Celsius    Units = "celsius"
	Fahrenheit Units = "fahrenheit"
)

// record is one row of the conditions table. Temperatures are stored
// in whole degrees Celsius.
type record struct {
	tempC     int
	condition string
	humidity  int
	windKph   int
}

// conditions is keyed by lowercase city name.
var conditions = map[string]record{
	"paris":     {tempC: 18, condition: "Partly Cloudy", humidity: 65, windKph: 12},
	"london":    {tempC: 15, condition: "Rainy", humidity: 80, windKph: 18},
	"new york":  {tempC: 20, condition: "Cloudy", humidity: 60, windKph: 15},
	"tokyo":     {tempC: 22, condition: "Sunny", humidity: 55, windKph: 8},
	"sydney":    {tempC: 25, condition: "Sunny", humidity: 50, windKph: 20},
	"barcelona": {tempC: 24, condition: "Sunny", humidity: 58, windKph: 10},
	"rome":      {tempC: 26, condition: "Clear", humidity: 45, windKph: 9},
	"bangkok":   {tempC: 32, condition: "Humid", humidity: 85, windKph: 6},
}

// Report is the structured result of a lookup. Status is one of
// "success", "no_data", or "error"; only success reports carry
// conditions.
type Report struct {
	Status      string `json:"status"`
	City        string `json:"city,omitempty"`
	Temperature int    `json:"temperature,omitempty"`
	Units       string `json:"units,omitempty"`
	Condition   string `json:"condition,omitempty"`
	Humidity    int    `json:"humidity,omitempty"`
	WindSpeed   int    `json:"wind_speed,omitempty"`
	Summary     string `json:"summary,omitempty"`
	Message     string `json:"message,omitempty"`
}

// Lookup returns current conditions for city. Cities match
// case-insensitively; unknown cities yield a "no_data" report rather
// than an error. Any units value other than Fahrenheit is treated as
// Celsius.
func Lookup(city string, units Units) *Report {
	trimmed := strings.TrimSpace(city)
	if trimmed == "" {
		return &Report{Status: "error", Message: "city cannot be empty"}
	}

	rec, ok := conditions[strings.ToLower(trimmed)]
	if !ok {
		return &Report{
			Status:  "no_data",
			City:    trimmed,
			Message: fmt.Sprintf("no weather data available for %s", trimmed),
		}
	}

	if units != Fahrenheit {
		units = Celsius
	}

	temp := rec.tempC
	symbol := "°C"
	if units == Fahrenheit {
		temp = int(math.Round(float64(rec.tempC)*9/5 + 32))
		symbol = "°F"
	}

	return &Report{
		Status:      "success",
		City:        trimmed,
		Temperature: temp,
		Units:       string(units),
		Condition:   rec.condition,
		Humidity:    rec.humidity,
		WindSpeed:   rec.windKph,
		Summary: fmt.Sprintf("It is currently %s and %d%s in %s.",
			strings.ToLower(rec.condition), temp, symbol, trimmed),
	}
}
