package congress

import (
	"fmt"
	"strconv"
	"time"
)

// params is an ordered set of candidate query parameters. Unset entries
// carry a nil value until filter drops them; insertion order is kept so
// resolved requests stay deterministic.
type params []param

type param struct {
	key   string
	value any
}

func (p params) put(key string, value any) params {
	return append(p, param{key: key, value: value})
}

func (p params) putInt(key string, v *int) params {
	if v == nil {
		return p.put(key, nil)
	}
	return p.put(key, *v)
}

func (p params) putString(key, v string) params {
	if v == "" {
		return p.put(key, nil)
	}
	return p.put(key, v)
}

func (p params) putTime(key string, v *time.Time) params {
	if v == nil {
		return p.put(key, nil)
	}
	return p.put(key, v.UTC().Format("2006-01-02T15:04:05Z"))
}

// filter drops the entries that were never given a value.
func (p params) filter() params {
	var out params
	for _, entry := range p {
		if entry.value == nil {
			continue
		}
		out = append(out, entry)
	}
	return out
}

func (p params) values() map[string]string {
	out := map[string]string{}
	for _, entry := range p.filter() {
		switch v := entry.value.(type) {
		case string:
			out[entry.key] = v
		case int:
			out[entry.key] = strconv.Itoa(v)
		default:
			out[entry.key] = fmt.Sprint(v)
		}
	}
	return out
}

// Filters are the pagination and filter options every resource accepts.
// Zero values mean "not set" and never reach the request.
type Filters struct {
	Limit        *int
	Offset       *int
	FromDateTime *time.Time
	ToDateTime   *time.Time
	Sort         string
	// response format override, upstream defaults to json
	Format string
}

func (f Filters) params() params {
	return params{}.
		putInt("limit", f.Limit).
		putInt("offset", f.Offset).
		putTime("fromDateTime", f.FromDateTime).
		putTime("toDateTime", f.ToDateTime).
		putString("sort", f.Sort).
		putString("format", f.Format)
}
