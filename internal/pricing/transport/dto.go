package transport

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Request DTOs

// ValuationRequest is the property descriptor for an instant estimate.
// Every field is optional; the engine substitutes defaults for absent or
// out-of-domain values instead of rejecting them.
type ValuationRequest struct {
	ZipCode   *string  `json:"zip_code,omitempty"`
	County    *string  `json:"county,omitempty"`
	Beds      *int     `json:"beds,omitempty"`
	Baths     *float64 `json:"baths,omitempty"`
	Sqft      *int     `json:"sqft,omitempty"`
	Condition *string  `json:"condition,omitempty"`
}

// SetZipRateRequest writes a single ZIP override.
type SetZipRateRequest struct {
	Zip  string  `json:"zip" validate:"required"`
	Ppsf float64 `json:"ppsf" validate:"required"`
}

// BulkZipRateEntry is one row of a bulk import. Bulk payloads come from
// pasted JSON, so both fields tolerate loose typing (numbers for ZIPs,
// strings for rates); entries that cannot be coerced are skipped during
// normalization rather than failing the batch.
type BulkZipRateEntry struct {
	Zip  FlexString `json:"zip"`
	Ppsf FlexNumber `json:"ppsf"`
}

// Response DTOs

// ValuationResult is the priced estimate with its confidence band.
type ValuationResult struct {
	Estimate   int64   `json:"estimate"`
	Low        int64   `json:"low"`
	High       int64   `json:"high"`
	PpsfUsed   float64 `json:"ppsf_used"`
	SqftUsed   int     `json:"sqft_used"`
	Adjustment float64 `json:"adjustment"`
	Band       float64 `json:"band"`
}

// ValuationResponse wraps the result for the public endpoint.
type ValuationResponse struct {
	Valuation ValuationResult `json:"valuation"`
}

// ZipRateResponse returns a single stored override.
type ZipRateResponse struct {
	Zip  string  `json:"zip"`
	Ppsf float64 `json:"ppsf"`
}

// ZipRatesResponse returns the merged seed+override table.
type ZipRatesResponse struct {
	Ppsf map[string]float64 `json:"ppsf"`
}

// BulkZipRatesResponse reports only the accepted-row count.
type BulkZipRatesResponse struct {
	Count int `json:"count"`
}

// Loose JSON scalar types

// FlexString accepts a JSON string or number and stores it as a string.
// Any other JSON value leaves it empty without failing the unmarshal.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		*f = FlexString(strings.TrimSpace(asString))
		return nil
	}

	var asNumber json.Number
	if err := json.Unmarshal(data, &asNumber); err == nil {
		*f = FlexString(asNumber.String())
		return nil
	}

	*f = ""
	return nil
}

// FlexNumber accepts a JSON number or numeric string. Valid reports whether
// a usable value was present; malformed values never fail the unmarshal.
type FlexNumber struct {
	Value float64
	Valid bool
}

func (f *FlexNumber) UnmarshalJSON(data []byte) error {
	f.Value = 0
	f.Valid = false

	var asFloat float64
	if err := json.Unmarshal(data, &asFloat); err == nil {
		f.Value = asFloat
		f.Valid = true
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(asString), 64)
		if err == nil {
			f.Value = parsed
			f.Valid = true
		}
		return nil
	}

	return nil
}
