package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MaRkS1234567/MySite-web/core/lead"
	"github.com/MaRkS1234567/MySite-web/core/locale"
)

var (
	applyKind     string
	applyName     string
	applyContact  string
	applyDescribe string
	applyFormat   string
	applyEndpoint string
	applyLang     string
)

// applyCmd submits a lead to a running contact relay
var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Submit a lead to the contact relay",
	Long: `Compose a lead and post it to a running contact relay endpoint,
with the same validation the site form applies.`,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVar(&applyKind, "kind", "tutor", "lead kind (tutor or dev)")
	applyCmd.Flags().StringVar(&applyName, "name", "", "your name")
	applyCmd.Flags().StringVar(&applyContact, "contact", "", "how to reach you")
	applyCmd.Flags().StringVar(&applyDescribe, "describe", "", "describe your situation or task")
	applyCmd.Flags().StringVar(&applyFormat, "format", "", "optional selection summary")
	applyCmd.Flags().StringVar(&applyEndpoint, "endpoint", "http://localhost:8080/api/contact", "contact relay endpoint")
	applyCmd.Flags().StringVar(&applyLang, "lang", "ru", "message language (ru or en)")
}

func runApply(cmd *cobra.Command, args []string) error {
	kind := lead.KindTutor
	if applyKind == string(lead.KindDev) {
		kind = lead.KindDev
	}

	draft := lead.NewDraft(kind)
	draft.Name = applyName
	draft.Contact = applyContact
	draft.Description = applyDescribe
	draft.Format = applyFormat

	submitter := lead.NewSubmitter(applyEndpoint, locale.Parse(applyLang))
	if err := submitter.Submit(cmd.Context(), draft); err != nil {
		if fields := submitter.InvalidFields(); len(fields) > 0 {
			names := make([]string, 0, len(fields))
			for _, f := range fields {
				names = append(names, string(f))
			}
			return fmt.Errorf("%s: %s", submitter.Message(), strings.Join(names, ", "))
		}
		return fmt.Errorf("%s", submitter.Message())
	}

	fmt.Println("Заявка отправлена.")
	return nil
}
