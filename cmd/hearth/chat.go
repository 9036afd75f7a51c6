package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func chatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Read and post to the family chat",
	}
	cmd.AddCommand(chatListCmd())
	cmd.AddCommand(chatSendCmd())
	return cmd
}

func chatListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the family chat",
		Args:  cobra.NoArgs,
		RunE:  runChatList,
	}
}

func runChatList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := openApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close(ctx)

	data := a.state.Data()
	if len(data.ChatMessages) == 0 {
		fmt.Fprintln(os.Stdout, "No messages.")
		return nil
	}
	for _, msg := range data.ChatMessages {
		fmt.Fprintf(os.Stdout, "[%s] %s: %s\n", msg.Timestamp, data.UserName(msg.AuthorID), msg.Content)
	}
	return nil
}

func chatSendCmd() *cobra.Command {
	var as string
	cmd := &cobra.Command{
		Use:   "send MESSAGE...",
		Short: "Post a message as a family member",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if as == "" {
				return fmt.Errorf("--as is required")
			}
			return runChatSend(cmd, as, strings.Join(args, " "))
		},
	}
	cmd.Flags().StringVar(&as, "as", "", "User id to post as")
	return cmd
}

func runChatSend(cmd *cobra.Command, as, content string) error {
	ctx := context.Background()

	a, err := openApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close(ctx)

	if err := a.login(as); err != nil {
		return err
	}
	msg, err := a.state.SendChatMessage(ctx, content)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Posted %s\n", msg.ID)
	return nil
}
