package types

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// csv column order: open, high, low, close, volume
const quoteFieldCount = 5

var ErrInvalidRecord = errors.New("invalid quote record")

// ParseQuoteRecord converts one csv record into a validated quote.
func ParseQuoteRecord(record []string) (Quote, error) {
	if len(record) < quoteFieldCount {
		return Quote{}, errors.Wrapf(ErrInvalidRecord, "expected %d fields, got %d", quoteFieldCount, len(record))
	}

	fields := make([]float64, quoteFieldCount)
	for i := 0; i < quoteFieldCount; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(record[i]), 64)
		if err != nil {
			return Quote{}, errors.Wrapf(ErrInvalidRecord, "field %d %q is not a number", i, record[i])
		}
		fields[i] = v
	}

	return NewQuote(fields[0], fields[1], fields[2], fields[3], fields[4])
}

// ReadQuotes reads OHLCV quotes from csv input. A header row is skipped when
// its first field does not parse as a number.
func ReadQuotes(r io.Reader) ([]Quote, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "read csv")
	}

	var quotes []Quote
	for i, record := range records {
		if i == 0 && len(record) > 0 {
			if _, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64); err != nil {
				continue
			}
		}

		quote, err := ParseQuoteRecord(record)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d", i+1)
		}

		quotes = append(quotes, quote)
	}

	return quotes, nil
}
