package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"business_idea_generator/api"
	"business_idea_generator/config"
	"business_idea_generator/export"
	"business_idea_generator/form"
	"business_idea_generator/generator"
	"business_idea_generator/mailer"
	"business_idea_generator/server"
)

const perplexityBaseURL = "https://api.perplexity.ai/"

func main() {
	envFile := flag.String("env", "", "path to a .env file (default: ./.env if present)")
	generate := flag.Bool("generate", false, "generate ideas through a running server instead of serving")
	serverURL := flag.String("server", "http://localhost:3000", "server url for --generate")
	apiKey := flag.String("api-key", "", "completion API key for --generate")
	model := flag.String("model", "", "model for --generate (server default when empty)")
	budget := flag.String("budget", "Under $1,000", "investment budget")
	skills := flag.String("skills", "", "skills/experience")
	interests := flag.String("interests", "", "interests/passions")
	location := flag.String("location", "", "city, country")
	timeCommitment := flag.String("time", "", "time commitment (Full-time, Part-time, Flexible)")
	markets := flag.String("markets", "", "comma-separated target markets")
	pdfPath := flag.String("pdf", "", "write the ideas to this PDF file after --generate (\"-\" for the default name)")
	txtPath := flag.String("txt", "", "write the ideas to this text file after --generate (\"-\" for the default name)")
	email := flag.Bool("email", false, "prompt for an address and email the ideas after --generate")
	flag.Parse()

	ctx := context.Background()

	if *generate {
		req := api.IdeaRequest{
			APIKey:         *apiKey,
			Model:          *model,
			Budget:         *budget,
			Skills:         *skills,
			Interests:      *interests,
			Location:       *location,
			TimeCommitment: *timeCommitment,
			Markets:        splitList(*markets),
		}
		if err := runClient(ctx, *serverURL, req, *pdfPath, *txtPath, *email); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		return
	}

	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := initLogger(cfg)

	newClient, err := buildLLM(cfg.LLM)
	if err != nil {
		logger.Error("failed to configure llm", "error", err)
		os.Exit(1)
	}
	agent, err := generator.NewAgent(newClient, generator.LLMSettings{
		Provider: cfg.LLM.Provider,
		Model:    cfg.LLM.Model,
		BaseURL:  llmBaseURL(cfg.LLM),
	})
	if err != nil {
		logger.Error("failed to create agent", "error", err)
		os.Exit(1)
	}

	mail, err := buildMailer(cfg.Mail, logger)
	if err != nil {
		logger.Error("failed to configure mail", "error", err)
		os.Exit(1)
	}
	if mail == nil {
		logger.Warn("EMAIL_USER/EMAIL_PASS not set; /send-email will report an error")
	}

	srv, err := server.New(agent, mail, cfg, logger)
	if err != nil {
		logger.Error("failed to create server", "error", err)
		os.Exit(1)
	}

	logger.Info("starting business idea generator",
		"port", cfg.Port,
		"env", cfg.AppEnv,
		"llm_provider", cfg.LLM.Provider,
		"llm_model", cfg.LLM.Model,
	)
	httpSrv := server.NewHTTPServer(srv.Routes(), cfg.Addr(), cfg.ReadTimeout, cfg.WriteTimeout, cfg.ShutdownTimeout, logger)
	if err := httpSrv.Run(ctx); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)}

	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func buildLLM(cfg config.LLMConfig) (generator.ClientFactory, error) {
	switch cfg.Provider {
	case "perplexity", "openai":
		return generator.OpenAIFactory, nil
	case "gemini":
		return generator.GeminiFactory, nil
	case "mock":
		return generator.MockLLM{}.Factory(), nil
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.Provider)
	}
}

func llmBaseURL(cfg config.LLMConfig) string {
	if cfg.BaseURL == "" && cfg.Provider == "perplexity" {
		return perplexityBaseURL
	}
	return cfg.BaseURL
}

// buildMailer returns nil, nil when no credentials are configured.
func buildMailer(cfg config.MailConfig, logger *slog.Logger) (*mailer.Mailer, error) {
	if !cfg.Enabled() {
		return nil, nil
	}
	mcfg := mailer.Config{
		From:     cfg.User,
		Subject:  cfg.Subject,
		Host:     cfg.Host,
		Port:     cfg.Port,
		Username: cfg.User,
		Password: cfg.Password,
	}
	transport, err := mailer.NewSMTPTransport(mcfg)
	if err != nil {
		return nil, err
	}
	return mailer.New(mcfg, transport, logger)
}

func runClient(ctx context.Context, serverURL string, req api.IdeaRequest, pdfPath, txtPath string, email bool) error {
	client, err := form.New(serverURL)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, "Generating innovative business ideas...")
	ideas, err := client.Generate(ctx, req)
	if err != nil {
		return err
	}
	fmt.Println(ideas)

	if pdfPath != "" {
		if pdfPath == "-" {
			pdfPath = export.FileName
		}
		if err := writeFile(pdfPath, client.ExportPDF); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved %s\n", pdfPath)
	}
	if txtPath != "" {
		if txtPath == "-" {
			txtPath = export.TextFileName
		}
		if err := writeFile(txtPath, client.ExportText); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved %s\n", txtPath)
	}

	if email {
		sent, err := client.PromptAndEmail(ctx, form.LinePrompter{In: os.Stdin, Out: os.Stderr})
		if err != nil {
			return fmt.Errorf("sending email: %w", err)
		}
		if sent {
			fmt.Fprintln(os.Stderr, "Email sent successfully!")
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
