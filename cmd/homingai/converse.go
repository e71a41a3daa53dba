package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"homingai-bridge/internal/domain"
	"homingai-bridge/internal/infra/homingai"
)

func newConverseCmd(opts *rootOptions) *cobra.Command {
	var (
		conversationID string
		language       string
	)

	cmd := &cobra.Command{
		Use:   "converse TEXT...",
		Short: "Send one utterance to the HomingAI agent",
		Args:  cobra.MinimumNArgs(1),
		RunE: withApp(opts, func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
			agent, err := a.hub.Conversation(ctx)
			if err != nil {
				return err
			}

			turn := domain.ChatTurn{
				Text:     strings.Join(args, " "),
				Language: language,
			}
			if cmd.Flags().Changed("conversation-id") {
				turn.ConversationID = &conversationID
			}

			result := agent.Converse(ctx, turn)
			printResult(cmd.OutOrStdout(), result)
			if !result.OK {
				return fmt.Errorf("conversation failed: %s", result.Cause)
			}
			return nil
		}),
	}

	cmd.Flags().StringVar(&conversationID, "conversation-id", "", "continue an existing conversation")
	cmd.Flags().StringVar(&language, "language", homingai.SpeechLanguage, "language tag sent with the utterance")
	return cmd
}
