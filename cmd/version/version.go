// SPDX-License-Identifier: Apache-2.0
package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Work-Fort/Welcome/pkg/apirpc"
	"github.com/Work-Fort/Welcome/pkg/welcome"
)

// NewVersionCmd creates the version command
func NewVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the current version of welcome and the API-RPC packet versions it speaks.`,
		Run: func(cmd *cobra.Command, args []string) {
			if version == "" {
				version = "dev"
			}
			fmt.Printf("welcome version %s\n", version)
			fmt.Printf("api-rpc packets %s (default), %s (install), >= %s\n",
				apirpc.DefaultProtocolVersion, welcome.InstallProtocolVersion, apirpc.MinProtocolVersion)
		},
	}
}
