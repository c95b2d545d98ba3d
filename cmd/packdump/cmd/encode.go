package cmd

import (
	"encoding/hex"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nascanti/interchange/pack"
)

var (
	encodeString  string
	encodeInt     int64
	encodeFloat   float64
	encodeBool    bool
	encodeNull    bool
	encodeKind    string
	encodeVersion string
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Pack a single scalar value and print its hex encoding",
	Run:   runEncodeCmd,
}

func init() {
	RootCmd.AddCommand(encodeCmd)
	flags := encodeCmd.Flags()
	flags.StringVar(&encodeKind, "kind", "string", "value kind to pack: null, bool, int, float, string")
	flags.StringVarP(&encodeString, "string", "s", "", "string value to pack (kind=string)")
	flags.Int64VarP(&encodeInt, "int", "i", 0, "integer value to pack (kind=int)")
	flags.Float64VarP(&encodeFloat, "float", "f", 0, "float value to pack (kind=float)")
	flags.BoolVarP(&encodeBool, "bool", "b", false, "boolean value to pack (kind=bool)")
	flags.BoolVar(&encodeNull, "as-null", false, "ignore other flags and pack Null")
	flags.StringVar(&encodeVersion, "version", "2.0", "protocol version to pack under")
}

func runEncodeCmd(_ *cobra.Command, _ []string) {
	ConfigureVerbosity()

	ver, err := parseVersionFlag(encodeVersion)
	if err != nil {
		log.Fatal(err)
	}

	host := scalarFromFlags()

	v, err := pack.From(host)
	if err != nil {
		log.Fatal(err)
	}

	data, err := pack.Pack(v, ver)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(hex.EncodeToString(data))
}

func scalarFromFlags() any {
	if encodeNull {
		return nil
	}

	switch encodeKind {
	case "null":
		return nil
	case "bool":
		return encodeBool
	case "int":
		return encodeInt
	case "float":
		return encodeFloat
	default:
		return encodeString
	}
}
