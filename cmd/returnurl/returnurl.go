// SPDX-License-Identifier: Apache-2.0
package returnurl

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Work-Fort/Welcome/cmd/cmdutil"
	"github.com/Work-Fort/Welcome/pkg/config"
	"github.com/Work-Fort/Welcome/pkg/platform"
	"github.com/Work-Fort/Welcome/pkg/welcome"
)

// NewReturnURLCmd creates the return-url command
func NewReturnURLCmd() *cobra.Command {
	var (
		referrer string
		vars     welcome.ServerVars
	)

	cmd := &cobra.Command{
		Use:   "return-url",
		Short: "Resolve where the wizard sends the administrator back to",
		Long: `Resolve where the wizard sends the administrator back to.

The referrer is kept only when it is one of the whitelisted panel pages on
the same origin; anything else resolves to the panel origin. The flags
mirror the web server variables the panel passes along.`,
		Example: `  welcome return-url --host panel.example.com:8443 \
      --referrer https://panel.example.com:8443/smb/
  # https://panel.example.com:8443/smb/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			detector, err := platform.FromSetting(config.GetPanelOS())
			if err != nil {
				return err
			}

			helper := welcome.New(welcome.Options{OS: detector})
			url := helper.ResolveReturnURL(vars, referrer)

			return cmdutil.PrintResult(map[string]string{"url": url}, func() {
				fmt.Println(url)
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&referrer, "referrer", "", "Page the administrator came from")
	flags.StringVar(&vars.RequestScheme, "scheme", "", "Request scheme (REQUEST_SCHEME)")
	flags.StringVar(&vars.HTTPS, "https", "", "HTTPS server variable")
	flags.StringVar(&vars.HTTPHost, "host", "", "Host header (HTTP_HOST)")
	flags.StringVar(&vars.LocalAddr, "local-addr", "", "Local address, used on Windows (LOCAL_ADDR)")
	flags.StringVar(&vars.ServerAddr, "server-addr", "", "Server address (SERVER_ADDR)")
	flags.StringVar(&vars.ServerPort, "server-port", "", "Server port (SERVER_PORT)")

	return cmd
}
