package cli

import (
	"github.com/spf13/cobra"
)

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "zkpauth-client",
		Short: "Chaum-Pedersen zero-knowledge login client",
		Long: "Registers a password-derived public key with the verifier and logs in\n" +
			"by proving knowledge of it. Global flags: -a host:port, -t timeout seconds,\n" +
			"-c config.json.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.registerAndLogin(cmd, args)
		},
	}

	root.SetOut(a.out)
	root.SetErr(a.out)

	root.AddCommand(a.registerCmd(), a.loginCmd(), a.runCmd())
	return root
}

func (a *App) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [username]",
		Short: "Register, then log in with the same user",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.registerAndLogin,
	}
}

func (a *App) registerAndLogin(cmd *cobra.Command, args []string) error {
	userName, err := a.userName(args)
	if err != nil {
		return err
	}

	if err := a.register(cmd, userName); err != nil {
		return err
	}
	return a.login(cmd, userName)
}
