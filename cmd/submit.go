package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/voiceinvoice/landing/backend"
	"github.com/voiceinvoice/landing/contactform"
	"github.com/voiceinvoice/landing/models"
	"github.com/voiceinvoice/landing/validators"
)

var errSubmitFailed = errors.New("contact submission failed")

var submission models.ContactSubmission

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Send one contact message to the backend",
	Example: `  landing submit --name "Ada" --email ada@example.com \
    --subject "Pricing" --message "Do you offer yearly plans?"`,
	RunE: runSubmit,
}

func init() {
	submitCmd.Flags().StringVar(&submission.Name, "name", "", "sender name")
	submitCmd.Flags().StringVar(&submission.Email, "email", "", "sender email")
	submitCmd.Flags().StringVar(&submission.Subject, "subject", "", "message subject")
	submitCmd.Flags().StringVar(&submission.Message, "message", "", "message body")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	if err := validators.CheckContactSubmission(submission); err != nil {
		return err
	}

	client := backend.New(cfg.BackendURL, cfg.BackendTimeout, logger)
	ctl := contactform.NewController(contactform.DefaultTemplate(), client, logger)

	v, err := ctl.Submit(cmd.Context(), submission)
	if err != nil {
		return err
	}
	logger.Debug("contact submitted", zap.String("state", v.State.String()))

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", v.State, v.Message)
	if v.State == contactform.Failed {
		return errSubmitFailed
	}
	return nil
}
