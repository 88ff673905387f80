package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mkrata/qrencode"
	"github.com/mkrata/qrencode/internal/logging"
)

var log zerolog.Logger

var rootCmd = &cobra.Command{
	Use:   "qrencode <message>",
	Short: "Render a QR Code as a BMP image",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncode,

	SilenceErrors: true,
	SilenceUsage:  true,
}

var (
	flagEC       string
	flagMask     int
	flagVersion  int
	flagOutput   string
	flagOpen     bool
	flagScale    int
	flagQuiet    int
	flagLogLevel string
)

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&flagEC, "ec", "e", "medium", "error correction level: low, medium, quartile, high")
	flags.IntVarP(&flagMask, "mask", "m", -1, "mask pattern 0..7 (default: chosen automatically)")
	flags.IntVarP(&flagVersion, "version", "v", 0, "QR version 1..40 (default: smallest that fits)")
	flags.StringVarP(&flagOutput, "output", "o", "output.bmp", "output BMP path")
	flags.BoolVar(&flagOpen, "open", false, "open the output image after writing it")
	flags.IntVar(&flagScale, "scale", qrencode.DefaultScale, "pixels per module")
	flags.IntVar(&flagQuiet, "quiet", qrencode.DefaultQuiet, "quiet zone width, in modules")
	flags.StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error (default info)")

	rootCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		level, err := logging.ParseLevel(flagLogLevel)
		if err != nil {
			return err
		}
		log = logging.New(os.Stderr, level)
		return nil
	}
}

// Execute runs the root command, printing a single error line and exiting
// non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
