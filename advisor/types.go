package advisor

import (
	"fmt"
	"strings"
)

// SoilReport is the soil parameter form. All values are validated at
// the boundary before anything reaches the gateway.
type SoilReport struct {
	Crop       string
	PH         float64
	Nitrogen   float64 // kg/ha
	Phosphorus float64 // kg/ha
	Potassium  float64 // kg/ha
	Moisture   float64 // percent
}

func (r SoilReport) Validate() error {
	if strings.TrimSpace(r.Crop) == "" {
		return fmt.Errorf("crop is required")
	}
	if r.PH < 0 || r.PH > 14 {
		return fmt.Errorf("pH %.1f is out of range (0-14)", r.PH)
	}
	if r.Nitrogen < 0 || r.Phosphorus < 0 || r.Potassium < 0 {
		return fmt.Errorf("nutrient values cannot be negative")
	}
	if r.Moisture < 0 || r.Moisture > 100 {
		return fmt.Errorf("moisture %.1f%% is out of range (0-100)", r.Moisture)
	}
	return nil
}

// MarketQuery identifies the crop and market a price estimate is
// requested for.
type MarketQuery struct {
	Crop   string
	Region string
	Market string // optional; empty means region-wide
}

func (q MarketQuery) Validate() error {
	if strings.TrimSpace(q.Crop) == "" {
		return fmt.Errorf("crop is required")
	}
	if strings.TrimSpace(q.Region) == "" {
		return fmt.Errorf("region is required")
	}
	return nil
}

// PestPhoto is an uploaded crop photo plus an optional grower note.
type PestPhoto struct {
	Image []byte
	MIME  string
	Note  string
}

func (p PestPhoto) Validate() error {
	if len(p.Image) == 0 {
		return fmt.Errorf("image is required")
	}
	if !strings.HasPrefix(p.MIME, "image/") {
		return fmt.Errorf("unsupported attachment type %q", p.MIME)
	}
	return nil
}
