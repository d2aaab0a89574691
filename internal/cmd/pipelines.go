package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/thediveo/enumflag/v2"

	"github.com/oliy/workers-sdk/internal/cmd/common"
	"github.com/oliy/workers-sdk/internal/constants"
	"github.com/oliy/workers-sdk/internal/error_helpers"
	"github.com/oliy/workers-sdk/internal/perr"
	"github.com/oliy/workers-sdk/internal/pipelines"
	"github.com/oliy/workers-sdk/internal/printers"
	"github.com/oliy/workers-sdk/internal/types"
)

// pipelines commands
func pipelinesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pipelines",
		Short: "Manage ingestion pipelines",
	}

	cmd.AddCommand(pipelineCreateCmd())
	cmd.AddCommand(pipelineListCmd())
	cmd.AddCommand(pipelineShowCmd())
	cmd.AddCommand(pipelineUpdateCmd())
	cmd.AddCommand(pipelineDeleteCmd())

	return cmd
}

// addConfigFlags registers the flags shared by create and update. Presence
// of each flag is checked at run time, so defaults here are placeholders.
func addConfigFlags(cmd *cobra.Command, compression *types.CompressionMode) {
	cmd.Flags().String(constants.ArgR2, "", "Name of the R2 bucket to write batches to")
	cmd.Flags().Int(constants.ArgBatchMaxMb, 0, "Maximum batch size in megabytes before flushing")
	cmd.Flags().Int(constants.ArgBatchMaxRows, 0, "Maximum number of rows per batch before flushing")
	cmd.Flags().Int(constants.ArgBatchMaxSeconds, 0, "Maximum age of a batch in seconds before flushing")
	cmd.Flags().String(constants.ArgTransform, "", "Worker applied to each batch, as script.entrypoint or script")
	cmd.Flags().Var(
		enumflag.New(compression, constants.ArgCompression, types.CompressionModeIds, enumflag.EnumCaseInsensitive),
		constants.ArgCompression,
		"Compression applied to written files; one of: none, gzip, deflate")
	cmd.Flags().String(constants.ArgFilepath, "", "Path within the bucket to write files to")
	cmd.Flags().String(constants.ArgFilename, "", "Name of written files; must contain ${slug}")
	cmd.Flags().Bool(constants.ArgAuthentication, false, "Only accept data via the authenticated binding source")
}

// collectConfigFlags turns the flags the user actually supplied into a
// presence-aware Flags struct. Flags left at their defaults stay nil.
func collectConfigFlags(cmd *cobra.Command) pipelines.Flags {
	var f pipelines.Flags
	flags := cmd.Flags()

	if flags.Changed(constants.ArgR2) {
		v, _ := flags.GetString(constants.ArgR2)
		f.Bucket = &v
	}
	if flags.Changed(constants.ArgBatchMaxMb) {
		v, _ := flags.GetInt(constants.ArgBatchMaxMb)
		f.BatchMaxMb = &v
	}
	if flags.Changed(constants.ArgBatchMaxRows) {
		v, _ := flags.GetInt(constants.ArgBatchMaxRows)
		f.BatchMaxRows = &v
	}
	if flags.Changed(constants.ArgBatchMaxSeconds) {
		v, _ := flags.GetInt(constants.ArgBatchMaxSeconds)
		f.BatchMaxSeconds = &v
	}
	if flags.Changed(constants.ArgTransform) {
		v, _ := flags.GetString(constants.ArgTransform)
		f.Transform = &v
	}
	if flags.Changed(constants.ArgCompression) {
		v := flags.Lookup(constants.ArgCompression).Value.String()
		f.Compression = &v
	}
	if flags.Changed(constants.ArgFilepath) {
		v, _ := flags.GetString(constants.ArgFilepath)
		f.Filepath = &v
	}
	if flags.Changed(constants.ArgFilename) {
		v, _ := flags.GetString(constants.ArgFilename)
		f.Filename = &v
	}
	if flags.Changed(constants.ArgAuthentication) {
		v, _ := flags.GetBool(constants.ArgAuthentication)
		f.Authentication = &v
	}

	return f
}

func accountId() (string, error) {
	id := viper.GetString("account_id")
	if id == "" {
		return "", perr.BadRequestWithMessage("No account set. Use --account-id or the CLOUDFLARE_ACCOUNT_ID environment variable.")
	}
	return id, nil
}

// create
func pipelineCreateCmd() *cobra.Command {
	var compression types.CompressionMode
	cmd := &cobra.Command{
		Use:   "create <name>",
		Args:  cobra.ExactArgs(1),
		RunE:  createPipelineFunc,
		Short: "Create a new pipeline",
		Long:  `Create a new pipeline that batches ingested data and writes it to an R2 bucket.`,
	}
	addConfigFlags(cmd, &compression)
	// a destination bucket is the one thing a new pipeline cannot do without
	_ = cmd.MarkFlagRequired(constants.ArgR2)

	return cmd
}

func createPipelineFunc(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	name := args[0]

	account, err := accountId()
	if err != nil {
		return err
	}

	config := pipelines.NewConfig(name)
	if err := pipelines.ApplyFlags(config, collectConfigFlags(cmd)); err != nil {
		return err
	}
	if err := config.Validate(); err != nil {
		return err
	}

	client := common.GetApiClient(ctx)

	bucket := config.Destination.Path.Bucket
	if _, err := client.GetBucket(ctx, account, bucket); err != nil {
		if !perr.IsNotFound(err) {
			return err
		}
		error_helpers.ShowWarning(fmt.Sprintf("Bucket %s not found in account %s. The pipeline cannot deliver data until the bucket exists.", bucket, account))
	}

	credentials, err := client.GenerateBucketCredentials(ctx, account, bucket)
	if err != nil {
		return err
	}
	config.Destination.Credentials = credentials

	created, err := client.CreatePipeline(ctx, account, config)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created pipeline %s (id: %s).\n", created.Name, created.Id)
	if created.Endpoint != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Ingest endpoint: %s\n", created.Endpoint)
	}
	return nil
}

// list
func pipelineListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Args:  cobra.NoArgs,
		RunE:  listPipelineFunc,
		Short: "List the pipelines in the account",
	}
}

func listPipelineFunc(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	account, err := accountId()
	if err != nil {
		return err
	}

	items, err := common.GetApiClient(ctx).ListPipelines(ctx, account)
	if err != nil {
		return err
	}

	printer, err := printers.GetPrinter[types.Pipeline](cmd)
	if err != nil {
		return err
	}
	return printer.PrintResource(ctx, types.NewPrintablePipeline(items), cmd.OutOrStdout())
}

// show
func pipelineShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Args:  cobra.ExactArgs(1),
		RunE:  showPipelineFunc,
		Short: "Show details of a pipeline",
	}
}

func showPipelineFunc(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	account, err := accountId()
	if err != nil {
		return err
	}

	pipeline, err := common.GetApiClient(ctx).GetPipeline(ctx, account, args[0])
	if err != nil {
		return err
	}

	printer, err := printers.GetPrinter[types.Pipeline](cmd)
	if err != nil {
		return err
	}
	return printer.PrintResource(ctx, types.NewPrintablePipelineFromSingle(pipeline), cmd.OutOrStdout())
}

// update
func pipelineUpdateCmd() *cobra.Command {
	var compression types.CompressionMode
	cmd := &cobra.Command{
		Use:   "update <name>",
		Args:  cobra.ExactArgs(1),
		RunE:  updatePipelineFunc,
		Short: "Update an existing pipeline",
		Long:  `Update an existing pipeline. Only the supplied flags change; everything else keeps its deployed value.`,
	}
	addConfigFlags(cmd, &compression)

	return cmd
}

func updatePipelineFunc(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	name := args[0]

	account, err := accountId()
	if err != nil {
		return err
	}

	client := common.GetApiClient(ctx)

	// merge the supplied flags over the currently deployed config
	config, err := client.GetPipeline(ctx, account, name)
	if err != nil {
		return err
	}

	flags := collectConfigFlags(cmd)
	needsCredentials := pipelines.NeedsNewCredentials(config, flags)

	if err := pipelines.ApplyFlags(config, flags); err != nil {
		return err
	}
	if err := config.Validate(); err != nil {
		return err
	}

	if needsCredentials {
		bucket := config.Destination.Path.Bucket
		if _, err := client.GetBucket(ctx, account, bucket); err != nil {
			if !perr.IsNotFound(err) {
				return err
			}
			error_helpers.ShowWarning(fmt.Sprintf("Bucket %s not found in account %s. The pipeline cannot deliver data until the bucket exists.", bucket, account))
		}

		credentials, err := client.GenerateBucketCredentials(ctx, account, bucket)
		if err != nil {
			return err
		}
		config.Destination.Credentials = credentials
	}

	updated, err := client.UpdatePipeline(ctx, account, name, config)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated pipeline %s.\n", updated.Name)
	return nil
}

// delete
func pipelineDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Args:  cobra.ExactArgs(1),
		RunE:  deletePipelineFunc,
		Short: "Delete a pipeline",
	}
}

func deletePipelineFunc(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	name := args[0]

	account, err := accountId()
	if err != nil {
		return err
	}

	if err := common.GetApiClient(ctx).DeletePipeline(ctx, account, name); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted pipeline %s.\n", name)
	return nil
}
