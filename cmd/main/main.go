package main

import (
	"errors"
	"fmt"
	"os"

	"rebrickable/lookup/internal/client"

	"github.com/spf13/cobra"
)

// Exit codes for the fetch command, one per error class.
const (
	exitMissingKey = 1
	exitBadParam   = 2
	exitHTTPError  = 3
	exitNetwork    = 4
	exitTLS        = 5
)

var errMissingAPIKey = errors.New("REBRICKABLE_API_KEY environment variable is required")

var rootCmd = &cobra.Command{
	Use:           "rebrick",
	Short:         "Look up LEGO part data from the Rebrickable V3 API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var apiErr *client.APIError
	var tlsErr *client.TLSVerificationError
	var netErr *client.NetworkError
	var badParam *paramError

	switch {
	case errors.Is(err, errMissingAPIKey):
		return exitMissingKey
	case errors.As(err, &badParam):
		return exitBadParam
	case errors.As(err, &apiErr):
		return exitHTTPError
	case errors.As(err, &tlsErr):
		return exitTLS
	case errors.As(err, &netErr):
		return exitNetwork
	}
	return 1
}
