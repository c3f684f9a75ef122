// utils/otp.go
package utils

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// OtpValidity is how long a generated code stays live.
const OtpValidity = 10 * time.Minute

// GenerateOTP returns a 6-digit numeric code sampled uniformly from
// [100000, 999999].
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}

// ErrTooManyAttempts is returned when an email exceeds the hourly
// verification budget.
var ErrTooManyAttempts = errors.New("Too many OTP attempts. Please try again later")

// ValidateOTPAttempts enforces a per-email verification budget of 5
// attempts per hour. A nil redis client disables the check.
func ValidateOTPAttempts(ctx context.Context, email string, rdb *redis.Client) error {
	if rdb == nil {
		return nil
	}

	key := "otp_attempts:" + email
	attempts, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		return err
	}

	// Set expiry if first attempt
	if attempts == 1 {
		rdb.Expire(ctx, key, 1*time.Hour)
	}

	if attempts > 5 {
		return ErrTooManyAttempts
	}

	return nil
}
