package cli

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/zkpauth/internal/client/client"
	"github.com/dmitrijs2005/zkpauth/internal/common"
	"github.com/spf13/cobra"
)

var ErrLoginFailed = errors.New("login unsuccessful: wrong username or password")

func (a *App) loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login [username]",
		Short: "Prove knowledge of the password and print the session id",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userName, err := a.userName(args)
			if err != nil {
				return err
			}
			return a.login(cmd, userName)
		},
	}
}

func (a *App) login(cmd *cobra.Command, userName string) error {
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sessionID, err := a.prover.AuthenticatePassword(cmd.Context(), userName, password)
	if err != nil {
		if errors.Is(err, client.ErrPermissionDenied) || errors.Is(err, client.ErrNotFound) {
			return fmt.Errorf("%w (%w)", ErrLoginFailed, err)
		}
		return err
	}

	fmt.Fprintln(a.out, "Login successful")
	fmt.Fprintf(a.out, "Session id: %s\n", sessionID)
	return nil
}
