package service

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Defaults applied to optional fields left blank on create.
const (
	DefaultFileSize    = "Not specified"
	DefaultLicenseType = "Standard"
)

// Number is a float64 that also accepts numeric strings in JSON payloads,
// e.g. both 100 and "100" decode to 100. Non-numeric text, NaN and
// infinities are rejected.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) > 0 && s[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("invalid number: %s", data)
	}
	*n = Number(v)
	return nil
}

// Integer is an int64 that also accepts numeric strings in JSON payloads.
// Fractional values are rejected.
type Integer int64

func (n *Integer) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) > 0 && s[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer: %s", data)
	}
	*n = Integer(v)
	return nil
}

// ProductDto represents the data transfer object for a product.
// Timestamps are RFC 3339 strings; updatedAt is empty until the first update.
type ProductDto struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int64   `json:"stock"`
	FileSize    string  `json:"fileSize"`
	LicenseType string  `json:"licenseType"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}

// ProductCreateDto represents the data transfer object for creating a new product.
// Price and Stock are pointers so that an explicit zero passes "required".
type ProductCreateDto struct {
	Name        string   `json:"name"        validate:"required,notblank,max=200"`
	Category    string   `json:"category"    validate:"required,notblank,max=100"`
	Description string   `json:"description" validate:"required,notblank"`
	Price       *Number  `json:"price"       validate:"required,gte=0"`
	Stock       *Integer `json:"stock"       validate:"required,gte=0"`
	FileSize    string   `json:"fileSize"    validate:"omitempty,max=100"`
	LicenseType string   `json:"licenseType" validate:"omitempty,max=100"`
}

// ProductUpdateDto represents a partial update. Only non-nil fields are
// validated and applied; per-field rules match ProductCreateDto.
type ProductUpdateDto struct {
	Name        *string  `json:"name"        validate:"omitempty,notblank,max=200"`
	Category    *string  `json:"category"    validate:"omitempty,notblank,max=100"`
	Description *string  `json:"description" validate:"omitempty,notblank"`
	Price       *Number  `json:"price"       validate:"omitempty,gte=0"`
	Stock       *Integer `json:"stock"       validate:"omitempty,gte=0"`
	FileSize    *string  `json:"fileSize"    validate:"omitempty,max=100"`
	LicenseType *string  `json:"licenseType" validate:"omitempty,max=100"`
}
