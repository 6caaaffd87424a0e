// Package codes generates the human-readable coupon and referral codes
// handed to campaign participants. Codes are random, not guaranteed unique;
// the caller retries on a storage uniqueness conflict.
package codes

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	couponPrefix   = "ZATCH"
	suffixLength   = 4
	referralLength = 10
	alphabet       = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// CouponCode builds a coupon code from the signup date plus a random suffix,
// e.g. ZATCH260828K3PQ.
func CouponCode(t time.Time) (string, error) {
	suffix, err := randomSuffix(suffixLength)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%s%s", couponPrefix, t.Format("060102"), suffix), nil
}

// ReferralCode builds a 10-character referral code from the current
// timestamp in base 36 plus a random suffix.
func ReferralCode(t time.Time) (string, error) {
	suffix, err := randomSuffix(suffixLength)
	if err != nil {
		return "", err
	}

	code := strings.ToUpper(strconv.FormatInt(t.UnixMilli(), 36)) + suffix
	if len(code) > referralLength {
		code = code[:referralLength]
	}
	return code, nil
}

// randomSuffix returns n random characters from the base-36 alphabet.
func randomSuffix(n int) (string, error) {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	out := make([]byte, n)
	for i, b := range bytes {
		out[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(out), nil
}
