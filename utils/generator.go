package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

const tempPasswordChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$"

// TempPasswordLength is the length of generated temporary passwords.
const TempPasswordLength = 12

// LoginIDPrefix builds the fixed part of a login id: the first two letters of
// the first and last name, uppercased, followed by the year.
func LoginIDPrefix(firstName, lastName string, year int) string {
	abbr := strings.ToUpper(takeTwo(firstName) + takeTwo(lastName))
	return fmt.Sprintf("%s%d", abbr, year)
}

// FormatLoginID appends the zero-padded 4-digit serial to the prefix.
func FormatLoginID(prefix string, serial int64) string {
	return fmt.Sprintf("%s%04d", prefix, serial)
}

func takeTwo(s string) string {
	r := []rune(s)
	if len(r) < 2 {
		return string(r)
	}
	return string(r[:2])
}

// GenerateTempPassword returns a random temporary password.
func GenerateTempPassword(length int) (string, error) {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(tempPasswordChars))))
		if err != nil {
			return "", err
		}
		b.WriteByte(tempPasswordChars[n.Int64()])
	}
	return b.String(), nil
}

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FirstOfMonth truncates t to the first day of its month.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// NextMonth returns the first day of the month after t.
func NextMonth(t time.Time) time.Time {
	return FirstOfMonth(t).AddDate(0, 1, 0)
}
