package main

import (
	"github.com/spf13/cobra"

	"github.com/document-export-service/pkg/dispatch"
)

var (
	sendTo          string
	sendSubject     string
	sendDescription string
)

var sendCmd = &cobra.Command{
	Use:   "send [contract|purchase-order] <id>",
	Short: "Generate a document PDF and email it through the backend",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.log.Sync()

		art, err := generateDocument(cmd.Context(), rt, args[0], args[1])
		if err != nil {
			return err
		}
		msg := dispatch.Message{To: sendTo, Subject: sendSubject, Description: sendDescription}
		return dispatch.NewEmailer(rt.backend, rt.log).Send(cmd.Context(), rt.session(), msg, art)
	},
}

func init() {
	sendCmd.Flags().StringVar(&sendTo, "to", "", "recipient address")
	sendCmd.Flags().StringVar(&sendSubject, "subject", "", "email subject")
	sendCmd.Flags().StringVar(&sendDescription, "description", "", "email body text")
	sendCmd.MarkFlagRequired("to")
}
