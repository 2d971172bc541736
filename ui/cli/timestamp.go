// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

package cli

import (
	"fmt"
	"strconv"

	tscore "github.com/seriousbug/littletools/core/timestamp"
	"github.com/seriousbug/littletools/internal/i18n"
	"github.com/seriousbug/littletools/internal/logging"
	"github.com/spf13/cobra"
)

func newTimestampCmd(a *app) *cobra.Command {
	var formatFlag, outputFlag string

	cmd := &cobra.Command{
		Use:   "timestamp [value]",
		Short: "Convert a Unix timestamp to a date",
		Long: `Converts a Unix timestamp in seconds or milliseconds to a date in the
configured time zone. Values with 13 or more digits are read as milliseconds
unless --format says otherwise. Without a value the current time is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := tscore.ParseFormat(formatFlag)
			if err != nil {
				return err
			}
			output, err := tscore.ParseFormat(outputFlag)
			if err != nil {
				return err
			}
			loc, err := a.config.Location()
			if err != nil {
				return err
			}

			now := a.now()
			state := tscore.NewState(now).SelectFormat(format).SelectOutputFormat(output)
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, i18n.T("cli.now"))
			} else {
				if _, ok := tscore.ParseInput(args[0], format); !ok {
					return fmt.Errorf("invalid timestamp %q", args[0])
				}
				state = state.SetInput(args[0]).Commit()
				if res, ok := state.Detected(); ok {
					logging.Debugf("timestamp %s resolved by rule %q", args[0], res.Rule)
					fmt.Fprintln(out, i18n.T("timestamp.detected", i18n.T("timestamp.unit."+res.Format.String())))
				}
			}

			fmt.Fprintln(out, i18n.T("timestamp.date"), tscore.FormatDate(state.DateTime, loc, i18n.DateLayout()))
			fmt.Fprintln(out, i18n.T("timestamp.relative"), tscore.Relative(state.DateTime, now))
			fmt.Fprintln(out, i18n.T("timestamp.formatted"), strconv.FormatInt(state.Formatted(), 10))
			return nil
		},
	}
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "auto", "Input unit: auto, seconds or milliseconds")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "auto", "Output unit: auto (same as input), seconds or milliseconds")
	return cmd
}
