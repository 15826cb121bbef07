package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"ticketbot/database"
	"ticketbot/domain/entities"
	"ticketbot/repository"

	"github.com/spf13/cobra"
)

// panelsCmd returns the panels command group for operators
func panelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "panels",
		Short: "Inspect stored ticket panels",
	}

	var guildID int64
	list := &cobra.Command{
		Use:   "list",
		Short: "List stored panels and where their messages were posted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.NewConnection(cmd.Context(), database.MigrationURLFromEnv())
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer db.Close()

			panels, err := repository.NewPanelRepository(db).ListAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list panels: %w", err)
			}
			return writePanelTable(cmd.OutOrStdout(), panels, guildID)
		},
	}
	list.Flags().Int64Var(&guildID, "guild", 0, "only show panels of this guild")

	cmd.AddCommand(list)
	return cmd
}

func writePanelTable(out io.Writer, panels []*entities.Panel, guildID int64) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tGUILD\tNAME\tOPTIONS\tMESSAGE")

	for _, p := range panels {
		if guildID != 0 && p.GuildID != guildID {
			continue
		}

		location := "-"
		if p.HasMessage() {
			location = fmt.Sprintf("%d/%d", *p.ChannelID, *p.MessageID)
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\n", p.ID, p.GuildID, p.Name, strings.Join(p.Options, ", "), location)
	}

	return w.Flush()
}
