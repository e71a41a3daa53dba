package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"homingai-bridge/internal/application"
	"homingai-bridge/internal/domain"
)

func newSetupCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Configure a HomingAI credential",
	}

	var apiKey string
	stt := &cobra.Command{
		Use:   "stt",
		Short: "Add a speech-to-text API key",
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
			return submit(ctx, cmd, a.hub.STTFlow(), apiKey)
		}),
	}
	stt.Flags().StringVar(&apiKey, "api-key", "", "HomingAI API key")

	var accessToken string
	conversation := &cobra.Command{
		Use:   "conversation",
		Short: "Add and validate a conversation access token",
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
			return submit(ctx, cmd, a.hub.ConversationFlow(), accessToken)
		}),
	}
	conversation.Flags().StringVar(&accessToken, "access-token", "", "HomingAI access token")

	cmd.AddCommand(stt, conversation)
	return cmd
}

func submit(ctx context.Context, cmd *cobra.Command, flow *application.Flow, credential string) error {
	result, err := flow.Submit(ctx, map[string]string{flow.Field(): credential})
	if err != nil {
		return err
	}

	printFlowResult(cmd.OutOrStdout(), result)

	switch result.Type {
	case application.FlowCreateEntry:
		return nil
	case application.FlowAbort:
		return fmt.Errorf("%s: %s", domainLabel(flow.Domain()), result.Reason)
	default:
		return fmt.Errorf("%s: setup incomplete", domainLabel(flow.Domain()))
	}
}

func domainLabel(name string) string {
	switch name {
	case domain.DomainSTT:
		return "speech to text"
	case domain.DomainConversation:
		return "conversation"
	}
	return name
}
