package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

const (
	timeFormat = time.RFC3339Nano // Use a precise time format
	dateFormat = "2006-01-02"
	separator  = "|"
)

// EncodeMultiFieldToken creates a token with any number of string fields
func EncodeMultiFieldToken(fields ...string) string {
	return base64.URLEncoding.EncodeToString([]byte(strings.Join(fields, separator)))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	return strings.Split(string(decodedBytes), separator), nil
}

// EncodeTransactionCursor turns the last row of a page into an opaque nextToken.
func EncodeTransactionCursor(c domain.TransactionCursor) string {
	return EncodeMultiFieldToken(
		c.Date.Format(dateFormat),
		c.CreatedAt.UTC().Format(timeFormat),
		c.TransactionID,
	)
}

// DecodeTransactionCursor parses a nextToken produced by EncodeTransactionCursor.
func DecodeTransactionCursor(token string) (*domain.TransactionCursor, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return nil, err
	}
	if len(parts) != 3 || parts[2] == "" {
		return nil, fmt.Errorf("invalid pagination token format (split)")
	}

	date, err := time.Parse(dateFormat, parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}
	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}

	return &domain.TransactionCursor{
		Date:          date,
		CreatedAt:     createdAt,
		TransactionID: parts[2],
	}, nil
}
