// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"strings"

	b64core "github.com/seriousbug/littletools/core/base64"
	"github.com/spf13/cobra"
)

func newBase64Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "base64",
		Short: "Encode text to Base64 or decode Base64 back to text",
	}
	cmd.AddCommand(
		newBase64ModeCmd(b64core.Encode, "Encode text to Base64"),
		newBase64ModeCmd(b64core.Decode, "Decode Base64 to text"),
	)
	return cmd
}

func newBase64ModeCmd(mode b64core.Mode, short string) *cobra.Command {
	return &cobra.Command{
		Use:   mode.String() + " [text...]",
		Short: short,
		Long: short + `.

The arguments are joined with single spaces. Without arguments the text is
read from stdin as is, trailing newline included.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			output := b64core.Transform(input, mode)
			if b64core.IsError(output) {
				fmt.Fprintln(cmd.ErrOrStderr(), output)
				return errReported
			}
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("could not read stdin: %w", err)
	}
	return string(data), nil
}
