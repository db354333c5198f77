package validator

import (
	"reflect"
	"time"
)

// isoLayouts are the ISO-8601 forms accepted for DATE columns: a calendar
// date in extended or basic form, optionally followed by a time of hour,
// minute or second precision joined with "T" or a space, optionally followed
// by a zone. Fractional seconds are accepted after the seconds field by
// time.Parse.
var isoLayouts = buildISOLayouts()

func buildISOLayouts() []string {
	dates := []string{"2006-01-02", "20060102"}
	separators := []string{"T", " "}
	clocks := []string{"15", "15:04", "15:04:05"}
	zones := []string{"", "Z07:00", "Z0700"}

	layouts := make([]string, 0, len(dates)*(1+len(separators)*len(clocks)*len(zones)))
	for _, date := range dates {
		layouts = append(layouts, date)
		for _, sep := range separators {
			for _, clock := range clocks {
				for _, zone := range zones {
					layouts = append(layouts, date+sep+clock+zone)
				}
			}
		}
	}
	return layouts
}

// isISODate reports whether value is a time.Time or text holding an ISO-8601
// date or date-time.
func isISODate(value any) bool {
	rv := reflect.ValueOf(value)
	for rv.IsValid() && rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return false
	}
	if _, ok := rv.Interface().(time.Time); ok {
		return true
	}
	if rv.Kind() != reflect.String {
		return false
	}
	return parseISODate(rv.String()) == nil
}

func parseISODate(s string) error {
	var err error
	for _, layout := range isoLayouts {
		if _, err = time.Parse(layout, s); err == nil {
			return nil
		}
	}
	return err
}
