// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/partshop/partshop/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "partshop",
	Short: "partshop serves the auto parts storefront and its admin api",
	Long: `partshop serves the auto parts storefront, the admin panel and the json api
for products, branches, site settings and image uploads.`,
	Args: cobra.OnlyValidArgs,
}

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVarP(
		&configPath,
		"config",
		"c",
		config.DefaultPath,
		"Directory holding main.toml",
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
