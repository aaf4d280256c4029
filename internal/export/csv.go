// Package export writes the sales and expense ledgers as one CSV file.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fekuna/omnipos-tracker/internal/ledger"
	"github.com/fekuna/omnipos-tracker/internal/model"
)

const DefaultFileName = "tracker-export.csv"

var Header = []string{"type", "id", "product_id", "qty", "price", "channel", "payment_method", "fee", "date", "note"}

type Kind string

const (
	KindBoth     Kind = "both"
	KindSales    Kind = "sales"
	KindExpenses Kind = "expenses"
)

type Range string

const (
	RangeAll Range = "all"
	Range7d  Range = "7d"
	Range30d Range = "30d"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindBoth, KindSales, KindExpenses:
		return k, nil
	case "":
		return KindBoth, nil
	}
	return "", fmt.Errorf("%w: unknown export kind %q", model.ErrInvalidInput, s)
}

func ParseRange(s string) (Range, error) {
	switch r := Range(s); r {
	case RangeAll, Range7d, Range30d:
		return r, nil
	case "":
		return RangeAll, nil
	}
	return "", fmt.Errorf("%w: unknown export range %q", model.ErrInvalidInput, s)
}

type Options struct {
	Kind  Kind
	Range Range
	Now   time.Time
}

// cutoff returns the earliest instant kept, or the zero time for RangeAll.
func (o Options) cutoff() time.Time {
	switch o.Range {
	case Range7d:
		return o.Now.AddDate(0, 0, -7)
	case Range30d:
		return o.Now.AddDate(0, 0, -30)
	}
	return time.Time{}
}

// WriteCSV writes sale rows then expense rows and reports how many data
// rows it wrote.
func WriteCSV(w io.Writer, sales []model.Sale, expenses []model.Expense, opts Options) (int, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return 0, err
	}

	cutoff := opts.cutoff()
	loc := opts.Now.Location()
	rows := 0

	if opts.Kind != KindExpenses {
		for _, s := range sales {
			if !inRange(s.Date, cutoff, loc) {
				continue
			}
			if err := cw.Write([]string{
				"sale",
				strconv.FormatInt(s.ID, 10),
				strconv.FormatInt(s.ProductID, 10),
				strconv.FormatInt(s.Qty, 10),
				number(s.SalePrice),
				deref(s.Channel),
				deref(s.PaymentMethod),
				number(s.Fee),
				s.Date,
				deref(s.Note),
			}); err != nil {
				return rows, err
			}
			rows++
		}
	}

	if opts.Kind != KindSales {
		for _, e := range expenses {
			if !inRange(e.Date, cutoff, loc) {
				continue
			}
			if err := cw.Write([]string{
				"expense",
				strconv.FormatInt(e.ID, 10),
				"", "", "", "",
				deref(e.PaymentMethod),
				number(e.Fee),
				e.Date,
				e.Category + ": " + number(e.Amount),
			}); err != nil {
				return rows, err
			}
			rows++
		}
	}

	cw.Flush()
	return rows, cw.Error()
}

// inRange keeps every row when cutoff is zero. Otherwise rows whose date
// cannot be parsed are dropped.
func inRange(date string, cutoff time.Time, loc *time.Location) bool {
	if cutoff.IsZero() {
		return true
	}
	t, ok := parseDate(date, loc)
	return ok && !t.Before(cutoff)
}

func parseDate(date string, loc *time.Location) (time.Time, bool) {
	for _, layout := range []string{ledger.TimestampLayout, time.RFC3339Nano} {
		if t, err := time.Parse(layout, date); err == nil {
			return t, true
		}
	}
	if t, err := time.ParseInLocation(ledger.DayLayout, date, loc); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
