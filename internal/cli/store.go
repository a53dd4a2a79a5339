package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	apperrors "github.com/vizgraph/vizgraph/pkg/errors"
	"github.com/vizgraph/vizgraph/pkg/io"
	"github.com/vizgraph/vizgraph/pkg/store"
	"github.com/vizgraph/vizgraph/pkg/vgraph"
)

// storeBackendFlags selects which document store backend the store
// subcommands talk to. The default is a file store under the XDG data dir.
type storeBackendFlags struct {
	redisAddr string
	mongoURI  string
}

// open builds the configured store. The caller must Close it.
func (f *storeBackendFlags) open(ctx context.Context) (store.Store, error) {
	switch {
	case f.redisAddr != "" && f.mongoURI != "":
		return nil, fmt.Errorf("--redis and --mongo are mutually exclusive")
	case f.redisAddr != "":
		return store.NewRedisStore(ctx, store.RedisConfig{Addr: f.redisAddr})
	case f.mongoURI != "":
		return store.NewMongoStore(ctx, store.MongoConfig{URI: f.mongoURI})
	default:
		dir, err := dataDir()
		if err != nil {
			return nil, fmt.Errorf("get data dir: %w", err)
		}
		return store.NewFileStore(dir)
	}
}

// storeCommand creates the store management command group.
func (c *CLI) storeCommand() *cobra.Command {
	flags := &storeBackendFlags{}

	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage stored documents",
	}

	cmd.PersistentFlags().StringVar(&flags.redisAddr, "redis", "", "use Redis backend at host:port")
	cmd.PersistentFlags().StringVar(&flags.mongoURI, "mongo", "", "use MongoDB backend at the given URI")

	cmd.AddCommand(c.storePutCommand(flags))
	cmd.AddCommand(c.storeGetCommand(flags))
	cmd.AddCommand(c.storeListCommand(flags))
	cmd.AddCommand(c.storeDeleteCommand(flags))
	cmd.AddCommand(c.storePathCommand())

	return cmd
}

// storePutCommand creates the "store put" subcommand. The document is
// decoded and validated before it is stored; invalid documents are rejected.
func (c *CLI) storePutCommand(flags *storeBackendFlags) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "put [file]",
		Short: "Validate a document and store it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := args[0]
			if name == "" {
				name = path
			}
			if err := apperrors.ValidateDocumentName(name); err != nil {
				return err
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			g, err := io.ParseGraph(data)
			if err != nil {
				return err
			}
			if findings := vgraph.Validate(g); vgraph.HasErrors(findings) {
				errorCount, warningCount := printFindings(findings)
				printFindingCounts(errorCount, warningCount)
				return fmt.Errorf("refusing to store invalid document")
			}

			st, err := flags.open(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			doc := store.NewDocument(name, data)
			if err := st.Put(ctx, doc); err != nil {
				return err
			}

			printSuccess("Stored %s", name)
			printKeyValue("id", doc.ID)
			printNextStep("Fetch it back", "vizgraph store get "+doc.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "document name (default: file path)")

	return cmd
}

// storeGetCommand creates the "store get" subcommand.
func (c *CLI) storeGetCommand(flags *storeBackendFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "get [id]",
		Short: "Fetch a stored document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := apperrors.ValidateDocumentID(args[0]); err != nil {
				return err
			}

			st, err := flags.open(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			doc, err := st.Get(ctx, args[0])
			if err != nil {
				return err
			}

			if output == "" {
				_, err = os.Stdout.Write(doc.Data)
				return err
			}
			if err := os.WriteFile(output, doc.Data, 0o644); err != nil {
				return err
			}
			printSuccess("Wrote %s", doc.Name)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the document to a file instead of stdout")

	return cmd
}

// storeListCommand creates the "store list" subcommand.
func (c *CLI) storeListCommand(flags *storeBackendFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := flags.open(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			infos, err := st.List(ctx)
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				printInfo("Store is empty")
				return nil
			}

			headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			rows := make([][]string, len(infos))
			for i, info := range infos {
				rows[i] = []string{info.ID, info.Name, info.UpdatedAt.Format("2006-01-02 15:04:05")}
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("ID", "Name", "Updated").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return headerStyle
					}
					if col == 0 {
						return StyleDim
					}
					return StyleValue
				})
			fmt.Println(t.Render())
			printDetail("%s document(s)", strconv.Itoa(len(infos)))
			return nil
		},
	}
}

// storeDeleteCommand creates the "store delete" subcommand.
func (c *CLI) storeDeleteCommand(flags *storeBackendFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a stored document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := apperrors.ValidateDocumentID(args[0]); err != nil {
				return err
			}

			st, err := flags.open(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Delete(ctx, args[0]); err != nil {
				return err
			}
			printSuccess("Deleted %s", args[0])
			return nil
		},
	}
}

// storePathCommand creates the "store path" subcommand.
func (c *CLI) storePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the file store directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := dataDir()
			if err != nil {
				return fmt.Errorf("get data dir: %w", err)
			}
			fmt.Println(dir)
			return nil
		},
	}
}
