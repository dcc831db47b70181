package cli

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"twinforge/internal/store"
	"twinforge/internal/wizard"
)

// answerOrder lists the steps present in a profile's answer map in
// wizard order, so the summary reads top to bottom like the flow did.
func answerOrder(p store.Profile) []wizard.StepID {
	var ids []wizard.StepID
	for _, st := range wizard.Steps() {
		if _, ok := p.Answers[st.ID]; ok {
			ids = append(ids, st.ID)
		}
	}
	return ids
}

func newProfilesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Saved onboarding profiles",
	}
	cmd.AddCommand(newProfilesListCmd(app))
	cmd.AddCommand(newProfilesShowCmd(app))
	return cmd
}

func newProfilesListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved profiles, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			profiles, err := st.List(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			if cmd.Flags().Changed("format") {
				return writeOut(cmd, app, map[string]any{"data": profiles})
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCREATED\tACCEPTED\tTONE (D/W/C)")
			for _, p := range profiles {
				accepted := "-"
				if p.Accepted {
					accepted = p.AcceptedAt.Format("2006-01-02 15:04")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d/%d/%d\n",
					p.ID, p.Contact.Name, p.CreatedAt.Format("2006-01-02 15:04"),
					accepted, p.Tone.Directness, p.Tone.Warmth, p.Tone.Challenge)
			}
			return w.Flush()
		},
	}
	return cmd
}

func newProfilesShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <profile-id>",
		Short: "Show one profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			p, err := st.Get(cmd.Context(), args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if cmd.Flags().Changed("format") {
				return writeOut(cmd, app, map[string]any{"data": p})
			}
			out, err := renderProfileSummary(p)
			if err != nil {
				return writeErr(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	return cmd
}

func renderProfileSummary(p store.Profile) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", p.Contact.Name)
	fmt.Fprintf(&b, "- **ID**: %s\n", p.ID)
	fmt.Fprintf(&b, "- **Created**: %s\n", p.CreatedAt.Format("2006-01-02 15:04"))
	if p.Accepted {
		fmt.Fprintf(&b, "- **Accepted**: %s\n", p.AcceptedAt.Format("2006-01-02 15:04"))
		fmt.Fprintf(&b, "- **Tone**: directness %d, warmth %d, challenge %d\n", p.Tone.Directness, p.Tone.Warmth, p.Tone.Challenge)
		fmt.Fprintf(&b, "- **Closeness**: %d/10\n", p.Closeness)
	} else {
		b.WriteString("- **Accepted**: not yet\n")
	}
	if p.Contact.Email != "" {
		fmt.Fprintf(&b, "- **Email**: %s\n", p.Contact.Email)
	}
	if p.Contact.Country != "" {
		fmt.Fprintf(&b, "- **Country**: %s\n", p.Contact.Country)
	}

	if len(p.Answers) > 0 {
		b.WriteString("\n## Answers\n")
		for _, step := range answerOrder(p) {
			fmt.Fprintf(&b, "\n### %s\n", step)
			fields := make([]string, 0, len(p.Answers[step]))
			for field := range p.Answers[step] {
				fields = append(fields, field)
			}
			sort.Strings(fields)
			for _, field := range fields {
				fmt.Fprintf(&b, "- %s: %v\n", field, p.Answers[step][field])
			}
		}
	}

	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
	if err != nil {
		return "", err
	}
	out, err := r.Render(b.String())
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}
