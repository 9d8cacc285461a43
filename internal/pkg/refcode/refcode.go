// Package refcode generates the human-readable display codes used across
// the platform: booking and payment references, user codes and room codes.
// Codes are not unique by construction; callers that need uniqueness must
// verify against storage.
package refcode

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Visually ambiguous characters (0/O, 1/I/l) are excluded so references
// survive being read over the phone at the front desk.
const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const randomLen = 8

func randomCode(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[rand.Intn(len(alphabet))])
	}
	return b.String()
}

// BookingReference returns a reference like BK20250128-A7F2K9M3.
func BookingReference() string {
	return fmt.Sprintf("BK%s-%s", time.Now().Format("20060102"), randomCode(randomLen))
}

// PaymentReference returns a reference like PAY20250128-XYZ9W8V7.
func PaymentReference() string {
	return fmt.Sprintf("PAY%s-%s", time.Now().Format("20060102"), randomCode(randomLen))
}

var rolePrefixes = map[string]string{
	"super_admin": "SADM",
	"admin":       "ADM",
	"staff":       "STF",
	"customer":    "CUST",
}

// UserCode returns a role-prefixed code like STF-C5M2W8X4.
func UserCode(role string) string {
	prefix, ok := rolePrefixes[role]
	if !ok {
		prefix = "USER"
	}
	return fmt.Sprintf("%s-%s", prefix, randomCode(randomLen))
}

// RoomCode returns a code like ROOM-101-NY from the room number and the
// location code.
func RoomCode(roomNumber, locationCode string) string {
	loc := strings.ToUpper(locationCode)
	if len(loc) > 3 {
		loc = loc[:3]
	}
	return fmt.Sprintf("ROOM-%s-%s", roomNumber, loc)
}
