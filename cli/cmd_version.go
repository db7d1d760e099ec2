package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/vpncman/vpnc-manager/common"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s %s\n", common.AppName, version)
			fmt.Printf("Built:      %s\n", buildTime)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("Platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
