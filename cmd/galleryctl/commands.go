package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/sbilibin2017/prompt-gallery/internal/gallery"
	"github.com/sbilibin2017/prompt-gallery/internal/models"
)

func clipboardCopy(s string) error {
	return clipboard.WriteAll(s)
}

func newListCmd(get func() *app) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List artworks, newest first",
		Long: `List artworks with their moderation status.

Examples:
  galleryctl list
  galleryctl list --status pending`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := models.Status(strings.ToLower(status))
			if status != "" && (!filter.Valid() || filter == models.StatusLegacy) {
				return fmt.Errorf("unknown status %q", status)
			}

			records, err := get().artworks.ListArtworks(cmd.Context())
			if err != nil {
				return err
			}
			records = gallery.Derive(records, gallery.Query{Sort: gallery.SortNewest, Visibility: gallery.VisibilityAdmin})

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSTATUS\tMODEL\tUPLOADER\tDESCRIPTION")
			for _, a := range records {
				if filter != "" && a.Status.Effective() != filter {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", a.ID, a.Status.Effective(), a.Model, a.UploaderName, a.Title())
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&status, "status", "s", "", "Only show pending, approved or rejected artworks")
	return cmd
}

func newApproveCmd(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "approve <id>",
		Short: "Publish a pending artwork",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			artwork, err := get().moderator.Approve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Artwork %s is %s\n", artwork.ID, artwork.Status.Effective())
			return nil
		},
	}
}

func newRejectCmd(get func() *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reject <id>",
		Short: "Hide a pending artwork",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			confirmed := yes || confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Reject artwork %s?", id))
			if !confirmed {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
				return nil
			}

			artwork, err := get().moderator.Reject(cmd.Context(), id, true)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Artwork %s is %s\n", artwork.ID, artwork.Status.Effective())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func newDeleteCmd(get func() *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Permanently delete an artwork",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			confirmed := yes || confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Delete artwork %s? This cannot be undone.", id))
			if !confirmed {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
				return nil
			}

			if err := get().moderator.Delete(cmd.Context(), id, true); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Artwork %s deleted\n", id)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func newExportEmailsCmd(get func() *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export-emails",
		Short: "Write email submissions to a CSV file",
		Long: `Write every email submission to a CSV file.

Without -o the file is named email_submissions_YYYY-MM-DD.csv.
Use -o - to print to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename, data, err := get().exporter.Export(cmd.Context())
			if err != nil {
				return err
			}

			if output == "-" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if output == "" {
				output = filename
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file")
	return cmd
}

func newPromptCmd(get func() *app) *cobra.Command {
	var copyPrompt bool

	cmd := &cobra.Command{
		Use:   "prompt <id>",
		Short: "Print the prompt of an artwork",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			artwork, err := a.artworks.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if artwork == nil {
				return fmt.Errorf("artwork %s not found", args[0])
			}

			fmt.Fprintln(cmd.OutOrStdout(), artwork.Prompt)
			if copyPrompt {
				if err := a.copy(artwork.Prompt); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), "(Clipboard access failed)")
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&copyPrompt, "copy", false, "Also copy the prompt to the clipboard")
	return cmd
}

// confirm asks a [y/N] question. Anything but y or yes declines.
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	answer, _ := bufio.NewReader(in).ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
