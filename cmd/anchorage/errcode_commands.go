package main

import (
	"fmt"
	"strconv"

	"github.com/brojonat/anchorage/ledger"
	"github.com/urfave/cli/v2"
)

func errcodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "errcode",
		Usage:     "Translate a numeric instruction error code to its tagged form",
		ArgsUsage: "CODE",
		Action: func(c *cli.Context) error {
			arg := c.Args().First()
			if arg == "" {
				return fmt.Errorf("missing error code argument")
			}
			// Base 0 accepts decimal, 0x-hex, and octal forms.
			code, err := strconv.ParseUint(arg, 0, 64)
			if err != nil {
				return fmt.Errorf("failed to parse error code %q: %w", arg, err)
			}

			e := ledger.InstructionErrorFromCode(code)
			view := map[string]any{
				"code":        fmt.Sprintf("%#x", code),
				"description": e.Error(),
			}
			if e.Kind == ledger.InstrErrCustom {
				view["custom"] = e.Custom
			}
			return printJSON(view)
		},
	}
}
