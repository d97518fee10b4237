package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coolbeans/almanac/pkg/chrono"
	"github.com/coolbeans/almanac/pkg/zonedir"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "almanac",
		Short: "Proleptic Gregorian calendar and clock arithmetic",
		Long: `Almanac is a calendar and clock-arithmetic tool built on a
self-contained date-time engine: proleptic Gregorian dates, normalized
durations, fixed-UTC-offset timezones and round-trip ISO 8601 conversion.`,
		Version: version,
	}

	rootCmd.AddCommand(nowCmd())
	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(diffCmd())
	rootCmd.AddCommand(ordinalCmd())
	rootCmd.AddCommand(weekdayCmd())
	rootCmd.AddCommand(zonesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// dateTimeReport is the JSON shape shared by now/parse/add.
type dateTimeReport struct {
	ISO         string `json:"iso"`
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	Day         int    `json:"day"`
	Hour        int    `json:"hour"`
	Minute      int    `json:"minute"`
	Second      int    `json:"second"`
	Microsecond int    `json:"microsecond,omitempty"`
	Weekday     string `json:"weekday"`
	Ordinal     int    `json:"ordinal"`
	Zone        string `json:"zone,omitempty"`
	Offset      string `json:"offset,omitempty"`
}

func buildReport(dt chrono.DateTime) dateTimeReport {
	r := dateTimeReport{
		ISO:         dt.ISOFormat(),
		Year:        dt.Year(),
		Month:       dt.Month(),
		Day:         dt.Day(),
		Hour:        dt.Hour(),
		Minute:      dt.Minute(),
		Second:      dt.Second(),
		Microsecond: dt.Microsecond(),
		Weekday:     weekdayName(dt.Weekday()),
		Ordinal:     dt.Ordinal(),
	}
	if name, ok := dt.ZoneName(); ok {
		r.Zone = name
	}
	if off, ok := dt.UTCOffset(); ok {
		r.Offset = off.String()
	}
	return r
}

func weekdayName(wd int) string {
	return [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}[wd]
}

func printReport(cmd *cobra.Command, dt chrono.DateTime) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		out, err := json.MarshalIndent(buildReport(dt), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}
	fmt.Println(dt.ISOFormat())
	return nil
}

// resolveZone turns a --zone argument into a zone: an ISO offset like
// "+05:30", the literal "UTC", or a name looked up in the zone directory.
func resolveZone(spec, zonesDir string) (*chrono.FixedZone, error) {
	if spec == "" {
		return nil, nil
	}
	if strings.EqualFold(spec, "UTC") {
		return chrono.UTC, nil
	}
	if spec[0] == '+' || spec[0] == '-' {
		off, err := chrono.ParseOffsetISO(spec)
		if err != nil {
			return nil, err
		}
		return chrono.FixedZoneFor(off)
	}
	if zonesDir == "" {
		return nil, fmt.Errorf("zone %q needs --zones-dir to resolve by name", spec)
	}
	reg, err := zonedir.NewRegistryWithDirectory(zonesDir)
	if err != nil {
		return nil, err
	}
	zone, ok := reg.Get(spec)
	if !ok {
		return nil, fmt.Errorf("zone %q not found in %s", spec, zonesDir)
	}
	return zone, nil
}

func nowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current date and time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			zoneSpec, _ := cmd.Flags().GetString("zone")
			zonesDir, _ := cmd.Flags().GetString("zones-dir")

			zone, err := resolveZone(zoneSpec, zonesDir)
			if err != nil {
				return err
			}

			var dt chrono.DateTime
			if zone != nil {
				dt, err = chrono.NowIn(chrono.SystemClock{}, zone)
			} else {
				dt, err = chrono.Now(chrono.SystemClock{})
			}
			if err != nil {
				return err
			}
			return printReport(cmd, dt)
		},
	}
	cmd.Flags().String("zone", "", "Zone as ±HH:MM offset, UTC, or a name from --zones-dir")
	cmd.Flags().String("zones-dir", "", "Directory of zone YAML files")
	cmd.Flags().Bool("json", false, "Emit JSON")
	return cmd
}

func parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <iso-datetime>",
		Short: "Parse an ISO 8601 date-time and print its fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := chrono.ParseDateTimeISO(args[0])
			if err != nil {
				return err
			}
			return printReport(cmd, dt)
		},
	}
	cmd.Flags().Bool("json", false, "Emit JSON")
	return cmd
}

func spanFromFlags(cmd *cobra.Command) (chrono.Span, error) {
	weeks, _ := cmd.Flags().GetFloat64("weeks")
	days, _ := cmd.Flags().GetFloat64("days")
	hours, _ := cmd.Flags().GetFloat64("hours")
	minutes, _ := cmd.Flags().GetFloat64("minutes")
	seconds, _ := cmd.Flags().GetFloat64("seconds")
	micros, _ := cmd.Flags().GetFloat64("micros")

	return chrono.NewSpan(chrono.SpanParts{
		Weeks:        weeks,
		Days:         days,
		Hours:        hours,
		Minutes:      minutes,
		Seconds:      seconds,
		Microseconds: micros,
	})
}

func addSpanFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("weeks", 0, "Weeks to add")
	cmd.Flags().Float64("days", 0, "Days to add")
	cmd.Flags().Float64("hours", 0, "Hours to add")
	cmd.Flags().Float64("minutes", 0, "Minutes to add")
	cmd.Flags().Float64("seconds", 0, "Seconds to add")
	cmd.Flags().Float64("micros", 0, "Microseconds to add")
}

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <iso-datetime>",
		Short: "Add a duration to a date-time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := chrono.ParseDateTimeISO(args[0])
			if err != nil {
				return err
			}
			span, err := spanFromFlags(cmd)
			if err != nil {
				return err
			}
			sum, err := dt.AddSpan(span)
			if err != nil {
				return err
			}
			return printReport(cmd, sum)
		},
	}
	addSpanFlags(cmd)
	cmd.Flags().Bool("json", false, "Emit JSON")
	return cmd
}

func diffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <iso-datetime> <iso-datetime>",
		Short: "Print the duration between two date-times (first minus second)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := chrono.ParseDateTimeISO(args[0])
			if err != nil {
				return err
			}
			b, err := chrono.ParseDateTimeISO(args[1])
			if err != nil {
				return err
			}
			diff, err := a.Sub(b)
			if err != nil {
				return err
			}

			asJSON, _ := cmd.Flags().GetBool("json")
			if asJSON {
				out, err := json.MarshalIndent(map[string]any{
					"span":          diff.String(),
					"days":          diff.Days(),
					"seconds":       diff.Seconds(),
					"microseconds":  diff.Microseconds(),
					"total_seconds": diff.TotalSeconds(),
				}, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			}
			fmt.Println(diff.String())
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Emit JSON")
	return cmd
}

func ordinalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ordinal <iso-date|N>",
		Short: "Convert between a date and its proleptic Gregorian ordinal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := args[0]
			if strings.Contains(arg, "-") {
				d, err := chrono.ParseDateISO(arg)
				if err != nil {
					return err
				}
				fmt.Println(d.Ordinal())
				return nil
			}
			var n int
			if _, err := fmt.Sscanf(arg, "%d", &n); err != nil {
				return fmt.Errorf("argument must be an ISO date or an ordinal: %q", arg)
			}
			d, err := chrono.DateFromOrdinal(n)
			if err != nil {
				return err
			}
			fmt.Println(d.ISOFormat())
			return nil
		},
	}
}

func weekdayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weekday <iso-date>",
		Short: "Print the day of the week for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := chrono.ParseDateISO(args[0])
			if err != nil {
				return err
			}
			fmt.Println(weekdayName(d.Weekday()))
			return nil
		},
	}
}

func zonesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zones",
		Short: "List the zones defined in a zone directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			zonesDir, _ := cmd.Flags().GetString("zones-dir")
			if zonesDir == "" {
				return fmt.Errorf("--zones-dir is required")
			}
			reg, err := zonedir.NewRegistryWithDirectory(zonesDir)
			if err != nil {
				return err
			}
			for _, name := range reg.List() {
				zone, _ := reg.Get(name)
				fmt.Printf("%-12s %s\n", name, zone.Offset().String())
			}
			return nil
		},
	}
	cmd.Flags().String("zones-dir", "", "Directory of zone YAML files")
	return cmd
}
