package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/zkpauth/internal/client/client"
	"github.com/dmitrijs2005/zkpauth/internal/client/config"
	"github.com/dmitrijs2005/zkpauth/internal/client/prover"
	"github.com/dmitrijs2005/zkpauth/internal/zkp"
)

type proverService interface {
	RegisterPassword(ctx context.Context, username string, password []byte) error
	AuthenticatePassword(ctx context.Context, username string, password []byte) (string, error)
}

type App struct {
	config *config.Config
	prover proverService
	closer io.Closer
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewAuthClientService(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	p := prover.New(apiClient, zkp.DefaultParams(), nil)

	return &App{
		config: c,
		prover: p,
		closer: apiClient,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run executes the command named by args and closes the connection.
func (a *App) Run(ctx context.Context, args []string) error {
	if a.closer != nil {
		defer a.closer.Close()
	}

	root := a.rootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// userName takes the name from the first positional argument or asks for it.
func (a *App) userName(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	return GetSimpleText(a.reader, "Please provide the username:", a.out)
}
