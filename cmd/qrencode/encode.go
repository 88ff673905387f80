package main

import (
	"os"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/mkrata/qrencode"
)

func runEncode(cmd *cobra.Command, args []string) error {
	ec, err := qrencode.ParseECLevel(flagEC)
	if err != nil {
		return err
	}

	opts := []qrencode.Option{qrencode.WithECLevel(ec)}
	if flagVersion != 0 {
		v := qrencode.Version(flagVersion)
		opts = append(opts, qrencode.WithMinVersion(v), qrencode.WithMaxVersion(v))
	}
	if flagMask != -1 {
		opts = append(opts, qrencode.WithMask(flagMask))
	}

	log.Debug().Str("message", args[0]).Str("ec", ec.String()).Msg("encoding QR code")

	sym, err := qrencode.MakeQR(args[0], opts...)
	if err != nil {
		return err
	}

	log.Info().
		Int("version", int(sym.Version())).
		Int("mask", sym.Mask()).
		Str("ec", sym.ECLevel().String()).
		Msg("encoded QR code")

	data := sym.BMP(flagScale, flagQuiet)
	if err := os.WriteFile(flagOutput, data, 0o644); err != nil {
		return err
	}
	log.Info().Str("path", flagOutput).Int("bytes", len(data)).Msg("wrote bitmap")

	if flagOpen {
		if err := browser.OpenFile(flagOutput); err != nil {
			log.Warn().Err(err).Msg("failed to open output image")
		}
	}

	return nil
}
