package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pable/golfstats/internal/model"
)

const dateLayout = "2006-01-02"

// filterFlags holds the raw values of the shot filter flags on one command.
type filterFlags struct {
	from, to, club, weather, course string
	attrs                           map[model.Attribute]*string
}

// addFilterFlags registers --from, --to, --club, --weather, --course and one
// flag per categorical attribute on cmd.
func addFilterFlags(cmd *cobra.Command) *filterFlags {
	ff := &filterFlags{attrs: make(map[model.Attribute]*string, len(model.Attributes))}
	fs := cmd.Flags()
	fs.StringVar(&ff.from, "from", "", "only shots on or after this date (YYYY-MM-DD)")
	fs.StringVar(&ff.to, "to", "", "only shots on or before this date (YYYY-MM-DD)")
	fs.StringVar(&ff.club, "club", "", "only shots with this club (exact name)")
	fs.StringVar(&ff.weather, "weather", "", "only rounds with this weather")
	fs.StringVar(&ff.course, "course", "", "only rounds at this course")
	for _, a := range model.Attributes {
		v := new(string)
		ff.attrs[a] = v
		fs.StringVar(v, flagName(a), "", strings.Join(a.Values(), ", "))
	}
	return ff
}

func flagName(a model.Attribute) string { return strings.ReplaceAll(a.String(), "_", "-") }

// criteria parses the flags into a FilterCriteria.
func (ff *filterFlags) criteria() (model.FilterCriteria, error) {
	var c model.FilterCriteria
	for _, f := range []struct{ name, value string }{
		{"from", ff.from}, {"to", ff.to}, {"club", ff.club}, {"weather", ff.weather}, {"course", ff.course},
	} {
		if err := setCriterion(&c, f.name, f.value); err != nil {
			return c, fmt.Errorf("--%s: %w", f.name, err)
		}
	}
	for _, a := range model.Attributes {
		if err := c.Set(a, *ff.attrs[a]); err != nil {
			return c, fmt.Errorf("--%s: %w", flagName(a), err)
		}
	}
	if !c.DateFrom.IsZero() && !c.DateTo.IsZero() && c.DateTo.Before(c.DateFrom) {
		return c, fmt.Errorf("--to %s is before --from %s", ff.to, ff.from)
	}
	return c, nil
}

// setCriterion sets one named field of c. Names are the filter flag names
// with either dashes or underscores.
func setCriterion(c *model.FilterCriteria, name, value string) error {
	name = strings.ReplaceAll(strings.ToLower(name), "-", "_")
	switch name {
	case "club":
		c.Club = value
	case "course":
		c.CourseName = value
	case "weather":
		w, err := model.ParseWeather(value)
		if err != nil {
			return err
		}
		c.Weather = w
	case "from", "to":
		var t time.Time
		if value != "" {
			day, err := time.ParseInLocation(dateLayout, value, time.Local)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			t = day
			if name == "to" {
				t = day.AddDate(0, 0, 1).Add(-time.Nanosecond)
			}
		}
		if name == "from" {
			c.DateFrom = t
		} else {
			c.DateTo = t
		}
	default:
		a, err := model.ParseAttribute(name)
		if err != nil {
			return err
		}
		return c.Set(a, value)
	}
	return nil
}

// active returns the set filter flags by name, for echoing in reports.
func (ff *filterFlags) active() map[string]string {
	out := make(map[string]string)
	for name, v := range map[string]string{
		"from": ff.from, "to": ff.to, "club": ff.club, "weather": ff.weather, "course": ff.course,
	} {
		if v != "" {
			out[name] = v
		}
	}
	for a, v := range ff.attrs {
		if *v != "" {
			out[a.String()] = *v
		}
	}
	return out
}
