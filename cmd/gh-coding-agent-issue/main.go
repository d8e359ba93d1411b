package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/chainguard-dev/clog"
	"github.com/ryo246912/gh-coding-agent-issue/internal/agent"
	"github.com/ryo246912/gh-coding-agent-issue/internal/config"
	"github.com/ryo246912/gh-coding-agent-issue/internal/github"
	"github.com/ryo246912/gh-coding-agent-issue/internal/instructions"
	"github.com/ryo246912/gh-coding-agent-issue/internal/metrics"
	"github.com/ryo246912/gh-coding-agent-issue/internal/models"
	"github.com/ryo246912/gh-coding-agent-issue/internal/service"
	"github.com/ryo246912/gh-coding-agent-issue/internal/tool"
	"github.com/ryo246912/gh-coding-agent-issue/internal/ui"
	"github.com/spf13/cobra"
)

// errReported marks failures that were already shown to the user
var errReported = errors.New("failure already reported")

func newIssueService(cfg *config.Config) (*service.IssueService, error) {
	client, err := github.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return service.NewIssueService(client), nil
}

func runCreate(cmd *cobra.Command, cfg *config.Config, repoURL, title, body string) error {
	out := cmd.OutOrStdout()

	// report malformed input ahead of missing credentials
	if _, err := models.ParseRepositoryURL(repoURL); err != nil {
		fmt.Fprintln(out, tool.FormatFailure(err))
		return errReported
	}

	issueService, err := newIssueService(cfg)
	if err != nil {
		fmt.Fprintln(out, tool.FormatFailure(err))
		return errReported
	}

	issue, err := issueService.CreateIssue(cmd.Context(), repoURL, title, body)
	if err != nil {
		fmt.Fprintln(out, tool.FormatFailure(err))
		return errReported
	}

	fmt.Fprintln(out, tool.FormatSuccess(issue))
	return nil
}

func runActors(cmd *cobra.Command, cfg *config.Config, repoURL string) error {
	if _, err := models.ParseRepositoryURL(repoURL); err != nil {
		return err
	}

	issueService, err := newIssueService(cfg)
	if err != nil {
		return err
	}

	actors, err := issueService.AssignableActors(cmd.Context(), repoURL)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), ui.FormatActors(actors))
	return nil
}

func runChat(cmd *cobra.Command, cfg *config.Config) error {
	ctx := cmd.Context()
	log := clog.FromContext(ctx)

	if err := cfg.RequireAnthropicAPIKey(); err != nil {
		return err
	}

	issueService, err := newIssueService(cfg)
	if err != nil {
		return err
	}
	githubTool := tool.NewGitHubTool(issueService)

	system, err := instructions.Load(cfg.InstructionsDir, cfg.AgentName)
	if err != nil {
		return err
	}

	client := anthropic.NewClient(option.WithAPIKey(cfg.AnthropicAPIKey))
	session, err := agent.NewSession(&client.Messages,
		agent.WithModel(cfg.AgentModel),
		agent.WithMaxTokens(cfg.AgentMaxTokens),
		agent.WithSystemInstructions(system),
		agent.WithTools(githubTool.ClaudeTool()),
	)
	if err != nil {
		return fmt.Errorf("failed to create agent session: %w", err)
	}

	if cfg.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsAddr); err != nil {
				log.With("error", err).Error("Metrics server failed")
			}
		}()
	}

	log.With("agent", cfg.AgentName).With("model", cfg.AgentModel).Info("Starting chat")
	return service.NewChatService(session, &ui.DefaultPrompter{}, cmd.OutOrStdout()).Run(ctx)
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "gh-coding-agent-issue",
		Short: "Create GitHub issues assigned to a repository's coding agent",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger := clog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			cmd.SetContext(clog.WithLogger(cmd.Context(), logger))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	var title, body string
	createCmd := &cobra.Command{
		Use:   "create <repo-url>",
		Short: "Create an issue assigned to the repository's coding agent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, cfg, args[0], title, body)
		},
	}
	createCmd.Flags().StringVarP(&title, "title", "t", "Migrate to .net 8", "Issue title")
	createCmd.Flags().StringVarP(&body, "body", "b", "Migrate to .NET 8", "Issue body (markdown)")

	actorsCmd := &cobra.Command{
		Use:   "actors <repo-url>",
		Short: "List the actors that can be assigned issues in the repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runActors(cmd, cfg, args[0])
		},
	}

	chatCmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the issue agent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd, cfg)
		},
	}
	chatCmd.Flags().StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "Serve Prometheus metrics on this address")

	root.AddCommand(createCmd, actorsCmd, chatCmd)
	return root
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		cancel()
		os.Exit(1)
	}
}
