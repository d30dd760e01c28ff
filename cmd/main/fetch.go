package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"rebrickable/lookup/internal/client"
	"rebrickable/lookup/internal/config"

	"github.com/spf13/cobra"
)

var (
	fetchParams []string
	fetchSave   string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <path>",
	Short: "Fetch JSON from the Rebrickable V3 API",
	Long:  "Fetch GET /api/v3/<path>, e.g. 'lego/sets/10270-1/' or 'lego/parts/', and print the JSON response.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFetch,
}

func init() {
	fetchCmd.Flags().StringArrayVar(&fetchParams, "param", nil,
		"Query parameters in key=value form (repeatable)")
	fetchCmd.Flags().StringVar(&fetchSave, "save", "",
		"Optional path to save JSON output")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Rebrickable.APIKey == "" {
		return errMissingAPIKey
	}

	params, err := parseParams(fetchParams)
	if err != nil {
		return err
	}

	apiClient := client.NewRebrickableClient(cfg.Rebrickable)
	data, err := apiClient.Fetch(cmd.Context(), args[0], params)
	if err != nil {
		return err
	}

	// Maps marshal with sorted keys, matching the dump in the web UI.
	output, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}

	if fetchSave != "" {
		if err := os.WriteFile(fetchSave, append(output, '\n'), 0o644); err != nil {
			return fmt.Errorf("failed to save response: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved response to %s\n", fetchSave)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return nil
}

type paramError struct {
	msg string
}

func (e *paramError) Error() string {
	return e.msg
}

func parseParams(items []string) (map[string]string, error) {
	params := make(map[string]string, len(items))
	for _, item := range items {
		key, value, found := strings.Cut(item, "=")
		if !found {
			return nil, &paramError{fmt.Sprintf("invalid param %q: use key=value", item)}
		}
		if key == "" {
			return nil, &paramError{fmt.Sprintf("invalid param %q: key cannot be empty", item)}
		}
		params[key] = value
	}
	return params, nil
}
