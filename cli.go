package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
	"resty.dev/v3"

	"github.com/Saivya1/Portfolio/internal/config"
	"github.com/Saivya1/Portfolio/internal/content"
	"github.com/Saivya1/Portfolio/internal/logging"
	"github.com/Saivya1/Portfolio/internal/motion"
	"github.com/Saivya1/Portfolio/internal/store"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	cfgFile string
	v       = config.New()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site server",
	Long: `Serves the portfolio site: the animated single page, the contact form,
certificate downloads and a privacy-conscious admin dashboard.`,
	SilenceUsage: true,
	RunE:         serve,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	RunE:  serve,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check a running server",
	Long:  `Calls /healthz on a running server and prints the response.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		url, _ := cmd.Flags().GetString("url")
		if url == "" {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			url = "http://localhost" + cfg.Addr()
		}
		return printStatus(url)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Dump resolved config",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log.Infof("Using config file: %v", v.ConfigFileUsed())
		printJSONColored(cfg)
		return nil
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Simulate a scroll through the page and print the reveal timeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		height, _ := cmd.Flags().GetFloat64("height")
		section, _ := cmd.Flags().GetFloat64("section")
		step, _ := cmd.Flags().GetFloat64("step")
		threshold, _ := cmd.Flags().GetFloat64("threshold")
		asJSON, _ := cmd.Flags().GetBool("json")

		p, err := content.Default()
		if err != nil {
			return err
		}
		events := simulateScroll(p, previewOptions{
			ViewportHeight: height,
			SectionHeight:  section,
			Step:           step,
			Threshold:      threshold,
		})
		if asJSON {
			printJSONColored(events)
			return nil
		}

		head := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
		fmt.Println(head.Render(fmt.Sprintf("%8s  %-14s %-14s %-10s %s", "scrollY", "section", "active", "variant", "child delays")))
		for _, e := range events {
			delays := make([]string, len(e.Delays))
			for i, d := range e.Delays {
				delays[i] = d.String()
			}
			fmt.Printf("%8.0f  %-14s %-14s %-10s %s\n", e.ScrollY, e.Section, e.Active, e.Variant, strings.Join(delays, " "))
		}
		return nil
	},
}

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Delete visitor records older than the retention period",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		st, err := store.Open(ctx, cfg.DBPath)
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := st.CleanupVisitors(ctx, cfg.Privacy.Retention)
		if err != nil {
			return err
		}
		log.Infof("Privacy cleanup: removed %d visitor records older than %v", n, cfg.Privacy.Retention)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		babyBlue := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
		green := lipgloss.NewStyle().Foreground(lipgloss.Color("76"))
		log.Infof("%v version %v", babyBlue.Render("portfolio"), green.Render(strings.TrimSpace(version)))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML)")
	rootCmd.PersistentFlags().Int("port", 8080, "listen port")
	rootCmd.PersistentFlags().String("db", "portfolio.db", "SQLite database path")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to a rotating file")
	bindFlag("port", "port")
	bindFlag("db_path", "db")
	bindFlag("log.level", "log-level")
	bindFlag("log.file", "log-file")

	statusCmd.Flags().String("url", "", "server base URL (default http://localhost:<port>)")

	previewCmd.Flags().Float64("height", 800, "viewport height in px")
	previewCmd.Flags().Float64("section", 900, "height of each section in px")
	previewCmd.Flags().Float64("step", 50, "scroll step in px")
	previewCmd.Flags().Float64("threshold", motion.DefaultThreshold, "visible fraction that reveals a section")
	previewCmd.Flags().Bool("json", false, "print the timeline as JSON")

	rootCmd.AddCommand(serveCmd, statusCmd, configCmd, previewCmd, cleanupCmd, versionCmd)
}

func bindFlag(key, flag string) {
	if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func initConfig() {
	cobra.CheckErr(config.ReadFile(v, cfgFile))
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return config.Config{}, err
	}
	if err := logging.Setup(cfg.Log.Level, cfg.Log.File); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func serve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return runServer(ctx, cfg)
}

func printStatus(baseURL string) error {
	client := resty.New()
	defer client.Close()
	client.SetBaseURL(strings.TrimRight(baseURL, "/"))
	client.SetTimeout(5 * time.Second)
	client.SetHeader("Accept", "application/json")
	client.SetHeader("User-Agent", "portfolio/"+version)

	res, err := client.R().Get("/healthz")
	if err != nil {
		return fmt.Errorf("error checking status: %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return fmt.Errorf("error checking status: %s", res.Status())
	}

	log.Info(string(pretty.Color(pretty.Pretty(res.Bytes()), nil)))
	return nil
}

func printJSONColored(data any) {
	j, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		log.Errorf("Error marshalling JSON: %v", err)
		return
	}

	log.Info(string(pretty.Color(j, nil)))
}
