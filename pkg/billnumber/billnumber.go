// Package billnumber formats and parses store-scoped sequential bill numbers
// of the form INV/{branchCode}/{YYYYMMDD}/{serial}. Serials start at
// InitialSerial and reset each calendar day per store; allocation itself is
// done by the database so concurrent checkouts cannot collide.
package billnumber

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// InitialSerial is the first serial issued for a store on any given day.
const InitialSerial = 1000

const prefix = "INV"

var ErrMalformed = errors.New("malformed bill number")

// Format renders a bill number: INV/{branchCode}/{YYYYMMDD}/{serial}, with
// the serial zero-padded to six digits.
func Format(branchCode string, date time.Time, serial int) string {
	return fmt.Sprintf("%s/%s/%s/%06d", prefix, branchCode, date.Format("20060102"), serial)
}

// Parse splits a bill number into its branch code, date and serial.
func Parse(s string) (branchCode string, date time.Time, serial int, err error) {
	parts := strings.Split(s, "/")
	if len(parts) != 4 || parts[0] != prefix {
		return "", time.Time{}, 0, ErrMalformed
	}

	date, err = time.Parse("20060102", parts[2])
	if err != nil {
		return "", time.Time{}, 0, ErrMalformed
	}

	serial, err = strconv.Atoi(parts[3])
	if err != nil {
		return "", time.Time{}, 0, ErrMalformed
	}

	return parts[1], date, serial, nil
}
