package cli

import (
	"fmt"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	"github.com/spf13/cobra"
)

func (a *App) registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register [username]",
		Short: "Publish the public values derived from a password",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userName, err := a.userName(args)
			if err != nil {
				return err
			}
			return a.register(cmd, userName)
		},
	}
}

func (a *App) register(cmd *cobra.Command, userName string) error {
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.prover.RegisterPassword(cmd.Context(), userName, password); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered %s\n", userName)
	return nil
}
