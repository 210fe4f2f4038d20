package cmd

import (
	"os"

	logging "github.com/inconshreveable/log15"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	cmdcommon "github.com/votrify/votrify/cmd/votrify/common"
	"github.com/votrify/votrify/lib/common"
	"github.com/votrify/votrify/lib/confirmation"
	"github.com/votrify/votrify/lib/consensus"
	"github.com/votrify/votrify/lib/gpg"
	"github.com/votrify/votrify/lib/tally"
	"github.com/votrify/votrify/lib/voter"
)

const defaultLogLevel logging.Lvl = logging.LvlInfo

var (
	flagConfig    string = common.GetENVValue("VOTRIFY_CONFIG", "")
	flagLogLevel  string = common.GetENVValue("VOTRIFY_LOG_LEVEL", defaultLogLevel.String())
	flagLogOutput string = common.GetENVValue("VOTRIFY_LOG_OUTPUT", "")
	flagGPG       string = common.GetENVValue("VOTRIFY_GPG", common.DefaultGPGBinary)
)

var (
	// runner starts gpg and countify; tests replace it.
	runner common.Runner = common.NewExecRunner()

	logLevel logging.Lvl
	log      logging.Logger = logging.New("module", "main")
)

var rootCmd = &cobra.Command{
	Use:   "votrify",
	Short: "Confirm your vote in the master ballot and verify the confirmations of others",
	PersistentPreRun: func(c *cobra.Command, args []string) {
		parseFlagsRoot(c)
	},
	Run: func(c *cobra.Command, args []string) {
		if len(args) < 1 {
			c.Usage()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", flagConfig, "yaml config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", flagLogLevel, "log level, {crit, error, warn, info, debug}")
	rootCmd.PersistentFlags().StringVar(&flagLogOutput, "log-output", flagLogOutput, "set log output file")
	rootCmd.PersistentFlags().StringVar(&flagGPG, "gpg", flagGPG, "GnuPG executable")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		cmdcommon.PrintFlagsError(rootCmd, "", err)
	}
}

func SetArgs(s []string) {
	rootCmd.SetArgs(s)
}

func parseFlagsRoot(c *cobra.Command) {
	var err error

	if logLevel, err = logging.LvlFromString(flagLogLevel); err != nil {
		cmdcommon.PrintFlagsError(c, "--log-level", err)
	}

	var formatter logging.Format
	if isatty.IsTerminal(os.Stderr.Fd()) {
		formatter = logging.TerminalFormat()
	} else {
		formatter = common.JSONLogFormat()
	}
	logHandler := logging.StreamHandler(os.Stderr, formatter)

	if len(flagLogOutput) < 1 {
		flagLogOutput = "<stderr>"
	} else {
		if logHandler, err = logging.FileHandler(flagLogOutput, common.JSONLogFormat()); err != nil {
			cmdcommon.PrintFlagsError(c, "--log-output", err)
		}
	}

	setLogging(logLevel, logHandler)

	log.Debug(
		"parsed flags:",
		"\n\tconfig", flagConfig,
		"\n\tlog-level", flagLogLevel,
		"\n\tlog-output", flagLogOutput,
		"\n\tgpg", flagGPG,
	)
}

func setLogging(level logging.Lvl, handler logging.Handler) {
	log.SetHandler(logging.LvlFilterHandler(level, handler))

	common.SetLogging(level, handler)
	confirmation.SetLogging(level, handler)
	consensus.SetLogging(level, handler)
	gpg.SetLogging(level, handler)
	tally.SetLogging(level, handler)
	voter.SetLogging(level, handler)
}

// loadConfig reads the `--config` file over the defaults. Flags given on
// the command line, then `VOTRIFY_*` environment variables, take
// precedence over the file.
func loadConfig(c *cobra.Command) (conf common.Config, err error) {
	conf = common.NewConfig()
	if len(flagConfig) > 0 {
		if conf, err = common.LoadConfigFile(flagConfig); err != nil {
			return
		}
	}

	overrideConfig(c, "gpg", "VOTRIFY_GPG", func() { conf.GPGBinary = flagGPG })

	return
}

// overrideConfig calls apply when the flag was set on the command line or
// its environment variable exists.
func overrideConfig(c *cobra.Command, flagName, env string, apply func()) {
	if f := c.Flags().Lookup(flagName); f != nil && f.Changed {
		apply()
		return
	}

	if _, found := os.LookupEnv(env); found {
		apply()
	}
}
