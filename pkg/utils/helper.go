package utils

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseFloat converts string to float64, reporting whether it parsed
func ParseFloat(value string) (float64, bool) {
	if value == "" {
		return 0, false
	}

	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}

	return result, true
}

// GenerateInvoiceNumber creates a unique invoice number with timestamp
func GenerateInvoiceNumber() string {
	rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()

	// Format: INV-YYYYMMDD-HHMMSS-RANDOM
	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("INV-%s-%s-%s", datePart, timePart, randomPart)
}
