package cmd

import (
	"encoding/hex"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nascanti/interchange/pack"
	"github.com/nascanti/interchange/value"
	"github.com/nascanti/interchange/version"
)

var (
	decodeHex     string
	decodeVersion string
)

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decode a hex-encoded byte stream into its packed values",
	Run:   runDecodeCmd,
}

func init() {
	RootCmd.AddCommand(decodeCmd)
	flags := decodeCmd.Flags()
	flags.StringVarP(&decodeHex, "hex", "x", "", "hex-encoded bytes to decode (required)")
	flags.StringVar(&decodeVersion, "version", "2.0", "protocol version to decode under")
	_ = decodeCmd.MarkFlagRequired("hex")
}

func runDecodeCmd(_ *cobra.Command, _ []string) {
	ConfigureVerbosity()

	ver, err := parseVersionFlag(decodeVersion)
	if err != nil {
		log.Fatal(err)
	}

	data, err := hex.DecodeString(decodeHex)
	if err != nil {
		log.Fatalf("invalid hex input: %v", err)
	}

	u := pack.NewUnpacker(data, ver)
	i := 0
	for v := range u.All() {
		fmt.Printf("[%d] %s\n", i, render(v))
		i++
	}
	if err := u.Err(); err != nil {
		log.Fatal(err)
	}
}

func render(v value.Value) string {
	switch v.Kind() {
	case value.KindNull:
		return "Null"
	case value.KindBoolean:
		b, _ := v.AsBoolean()
		return fmt.Sprintf("Boolean(%t)", b)
	case value.KindInteger:
		i, _ := v.AsInteger()
		return fmt.Sprintf("Integer(%d)", i)
	case value.KindFloat:
		f, _ := v.AsFloat()
		return fmt.Sprintf("Float(%g)", f)
	case value.KindString:
		s, _ := v.AsString()
		return fmt.Sprintf("String(%q)", s)
	case value.KindBytes:
		b, _ := v.AsBytes()
		return fmt.Sprintf("Bytes(%s)", hex.EncodeToString(b))
	case value.KindList:
		items, _ := v.AsList()
		return fmt.Sprintf("List(len=%d)", len(items))
	case value.KindDictionary:
		d, _ := v.AsDictionary()
		return fmt.Sprintf("Dictionary(len=%d)", d.Len())
	case value.KindStructure:
		st, _ := v.AsStructure()
		return fmt.Sprintf("Structure(tag=%q, fields=%d)", st.Tag, len(st.Fields))
	case value.KindDate:
		d, _ := v.AsDate()
		return fmt.Sprintf("Date(%04d-%02d-%02d)", d.Year(), d.Month(), d.Day())
	case value.KindTime:
		t, _ := v.AsTime()
		return fmt.Sprintf("Time(%02d:%02d:%09.6f)", t.Hour(), t.Minute(), t.Second())
	case value.KindDateTime:
		dt, _ := v.AsDateTime()
		return fmt.Sprintf("DateTime(%s)", dt.ISOFormat())
	case value.KindDuration:
		d, _ := v.AsDuration()
		return fmt.Sprintf("Duration(months=%d, days=%d, seconds=%d, ns=%d)",
			d.Months, d.Days, d.Seconds, d.Nanoseconds)
	case value.KindPoint:
		p, _ := v.AsPoint()
		return fmt.Sprintf("Point(srid=%d, coords=%v)", p.SRID, p.Coords)
	default:
		return "Unknown"
	}
}

func parseVersionFlag(s string) (version.Version, error) {
	var major, minor int
	if _, err := fmt.Sscanf(s, "%d.%d", &major, &minor); err != nil {
		return version.Version{}, fmt.Errorf("invalid version %q: %w", s, err)
	}

	return version.Version{Major: major, Minor: minor}, nil
}
