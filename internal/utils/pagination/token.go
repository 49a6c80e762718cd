package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// EncodeDateBasedToken creates a token for single date field pagination,
// used by the order and product listings (keyset on created_at).
func EncodeDateBasedToken(date time.Time) string {
	return base64.StdEncoding.EncodeToString([]byte(date.Format(timeFormat)))
}

// DecodeDateBasedToken decodes a token for single date field pagination
func DecodeDateBasedToken(token string) (time.Time, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	date, err := time.Parse(timeFormat, string(decodedBytes))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}

	return date, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields
// for listings that key on more than created_at (e.g. created_at|order_id).
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	return strings.Split(string(decodedBytes), "|"), nil
}
