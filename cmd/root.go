package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/tanq16/getr/internal/output"
	"github.com/tanq16/getr/internal/scheduler"
	"github.com/tanq16/getr/internal/utils"
)

var GetrVersion = "dev"

var osExit = os.Exit

type rootFlags struct {
	url        string
	quiet      bool
	output     string
	timeout    time.Duration
	kaTimeout  time.Duration
	userAgent  string
	configPath string
	debug      bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "getr -u URL [-q]",
		Short: "getr fetches a single URL into a local file",
		Long: `getr issues one HTTP GET, prints the response status and headers, and
saves the body to a file named after the last segment of the URL path.

Examples:
  getr -u https://example.com/archive.tar.gz
  getr -q -u https://example.com/
  getr -u https://example.com/file.bin -o renamed.bin`,
		Version:       GetrVersion,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fileCfg, err := utils.ReadConfig(flags.configPath)
			if err != nil {
				return err
			}
			utils.SetLogOutput(stderr, flags.debug || fileCfg.Debug)

			clientCfg := utils.HTTPClientConfig{
				Timeout:   flags.timeout,
				KATimeout: flags.kaTimeout,
				UserAgent: flags.userAgent,
			}
			if !cmd.Flags().Changed("timeout") && fileCfg.Timeout > 0 {
				clientCfg.Timeout = fileCfg.Timeout
			}
			if !cmd.Flags().Changed("keep-alive-timeout") && fileCfg.KATimeout > 0 {
				clientCfg.KATimeout = fileCfg.KATimeout
			}
			if !cmd.Flags().Changed("user-agent") && fileCfg.UserAgent != "" {
				clientCfg.UserAgent = fileCfg.UserAgent
			}

			verbosity := utils.Verbose
			if flags.quiet {
				verbosity = utils.Quiet
			}
			job := utils.GetrJob{
				JobType:          "http",
				URL:              flags.url,
				OutputPath:       flags.output,
				Verbosity:        verbosity,
				HTTPClientConfig: clientCfg,
			}
			return scheduler.Run(job, scheduler.Options{
				DefaultFilename: fileCfg.DefaultFilename,
				Stdout:          stdout,
				Stderr:          stderr,
			})
		},
	}

	cmd.Flags().StringVarP(&flags.url, "url", "u", "", "URL to download")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "Suppress informational output and the progress bar")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (inferred from the URL if not provided)")
	cmd.Flags().DurationVarP(&flags.timeout, "timeout", "t", 0, "Request timeout (eg. 30s, 5m); 0 means no timeout")
	cmd.Flags().DurationVarP(&flags.kaTimeout, "keep-alive-timeout", "k", 90*time.Second, "Keep-alive timeout for client (eg. 10s, 1m)")
	cmd.Flags().StringVarP(&flags.userAgent, "user-agent", "a", utils.ToolUserAgent, "User agent")
	cmd.MarkFlagRequired("url")

	// flags without shorthand
	cmd.Flags().StringVar(&flags.configPath, "config", "", "Path to YAML config file")
	cmd.Flags().BoolVar(&flags.debug, "debug", false, "Enable debug logging")

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

// run executes the command line and returns the process exit code. Download
// failures are already reported by the scheduler; only usage and config
// errors are printed here.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	code := utils.ExitCode(err)
	if code == utils.ExitUsage {
		fmt.Fprintln(stderr, output.FError(err.Error()))
	}
	return code
}

func Execute() {
	utils.ToolUserAgent = "getr/" + GetrVersion
	osExit(run(os.Args[1:], os.Stdout, os.Stderr))
}
