package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/thediveo/enumflag/v2"

	"github.com/oliy/workers-sdk/internal/constants"
	"github.com/oliy/workers-sdk/internal/error_helpers"
	"github.com/oliy/workers-sdk/internal/types"
)

var outputMode types.OutputMode

// Build the cobra command that handles our command line tool.
func rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     constants.Name,
		Short:   constants.ShortDescription,
		Long:    constants.LongDescription,
		Version: viper.GetString("main.version"),

		// errors are shown once, by RunCLI
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.SetVersionTemplate("Wrangler v{{.Version}}\n")

	rootCmd.PersistentFlags().String(constants.ArgApiHost, constants.DefaultApiHost, "Control plane API host")
	rootCmd.PersistentFlags().String(constants.ArgAccountId, "", "Account to operate on")
	rootCmd.PersistentFlags().Bool(constants.ArgTlsInsecure, false, "Skip TLS verification")
	rootCmd.PersistentFlags().Var(
		enumflag.New(&outputMode, constants.ArgOutput, types.OutputModeIds, enumflag.EnumCaseInsensitive),
		constants.ArgOutput,
		"Output format; one of: table, json, yaml")

	// Bind flags to config
	error_helpers.FailOnError(viper.BindPFlag("api.host", rootCmd.PersistentFlags().Lookup(constants.ArgApiHost)))
	error_helpers.FailOnError(viper.BindPFlag("api.insecure", rootCmd.PersistentFlags().Lookup(constants.ArgTlsInsecure)))
	error_helpers.FailOnError(viper.BindPFlag("account_id", rootCmd.PersistentFlags().Lookup(constants.ArgAccountId)))
	error_helpers.FailOnError(viper.BindEnv("account_id", "CLOUDFLARE_ACCOUNT_ID"))

	// disable auto completion generation, since we don't want to support
	// powershell yet - and there's no way to disable powershell in the default generator
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(pipelinesCmd())

	return rootCmd
}
