package migrations

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rllL1/portfolio/config"
)

// BaselineVersion is the schema created by the previous Next.js site: tables without this service's columns
const BaselineVersion = 1.0

// ParseVersion parses version string like "v3.14" or "3.14" and returns major version
func ParseVersion(versionStr string) (float64, error) {
	cleanVersion := strings.TrimPrefix(versionStr, "v")

	major, _, _ := strings.Cut(cleanVersion, ".")
	if major == "" {
		return 0, fmt.Errorf("invalid version format: %q", versionStr)
	}

	value, err := strconv.ParseFloat(major, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid major version: %s", major)
	}

	return value, nil
}

// GetCurrentCodeVersion returns the major version from config.VERSION
func GetCurrentCodeVersion() (float64, error) {
	return ParseVersion(config.VERSION)
}
