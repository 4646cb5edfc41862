package repository

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Dialect selects placeholder and timestamp encoding for the SQL repositories.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// sortableTimeLayout is fixed width so that text comparison of created_at sorts chronologically.
const sortableTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// rebind rewrites '?' placeholders into '$n' for PostgreSQL.
func (d Dialect) rebind(query string) string {
	if d != DialectPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (d Dialect) timeArg(t time.Time) any {
	if d == DialectSQLite {
		return t.UTC().Format(sortableTimeLayout)
	}
	return t.UTC()
}

// sqlTime scans timestamps stored either natively (postgres) or as text (sqlite).
type sqlTime struct {
	time.Time
}

func (st *sqlTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		st.Time = v.UTC()
		return nil
	case string:
		return st.parse(v)
	case []byte:
		return st.parse(string(v))
	case nil:
		st.Time = time.Time{}
		return nil
	}
	return fmt.Errorf("unsupported timestamp type %T", src)
}

func (st *sqlTime) parse(s string) error {
	for _, layout := range []string{sortableTimeLayout, time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			st.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp format %q", s)
}
