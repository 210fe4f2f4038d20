package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cmdcommon "github.com/votrify/votrify/cmd/votrify/common"
	"github.com/votrify/votrify/lib/common"
	"github.com/votrify/votrify/lib/common/observer"
	"github.com/votrify/votrify/lib/consensus"
	"github.com/votrify/votrify/lib/gpg"
	"github.com/votrify/votrify/lib/voter"
)

var (
	flagDomain  string = common.GetENVValue("VOTRIFY_DOMAIN", common.DefaultDomain)
	flagVoters  string
	flagSeats   string               = common.GetENVValue("VOTRIFY_SEATS", strconv.Itoa(common.DefaultSeats))
	flagFormat  cmdcommon.FormatFlag = cmdcommon.FormatFlag(common.GetENVValue("VOTRIFY_FORMAT", cmdcommon.TextFormat))
	flagVerbose bool                 = common.GetENVValue("VOTRIFY_VERBOSE", "0") == "1"
)

var verifyCmd *cobra.Command

type verifyOptions struct {
	Config  common.Config
	Voters  string
	Format  cmdcommon.FormatFlag
	Verbose bool
	Files   []string
}

func init() {
	verifyCmd = &cobra.Command{
		Use:   "verify <confirmation file>...",
		Short: "Verify the confirmations provided by voters",
		Args:  cobra.MinimumNArgs(1),
		Run: func(c *cobra.Command, args []string) {
			opts, flagName, err := parseFlagsVerify(c, args)
			if err != nil {
				cmdcommon.PrintFlagsError(c, flagName, err)
			}

			if err = runVerify(opts, os.Stdout, os.Stderr, cmdcommon.NewColorizer(os.Stdout)); err != nil {
				cmdcommon.PrintError(c, err)
			}
		},
	}

	verifyCmd.Flags().StringVarP(&flagDomain, "domain", "d", flagDomain, "domain of voters listed without e-mail address")
	verifyCmd.Flags().StringVarP(&flagVoters, "voters", "v", flagVoters, "file listing the eligible voters")
	verifyCmd.Flags().StringVar(&flagSeats, "seats", flagSeats, "number of elected candidates")
	verifyCmd.Flags().Var(&flagFormat, "format", "output format, {"+strings.Join(cmdcommon.Formats(), ", ")+"}")
	verifyCmd.Flags().BoolVar(&flagVerbose, "verbose", flagVerbose, "print every processed confirmation")

	verifyCmd.MarkFlagRequired("voters")

	rootCmd.AddCommand(verifyCmd)
}

func parseFlagsVerify(c *cobra.Command, args []string) (opts verifyOptions, flagName string, err error) {
	if opts.Config, err = loadConfig(c); err != nil {
		flagName = "--config"
		return
	}
	overrideConfig(c, "domain", "VOTRIFY_DOMAIN", func() { opts.Config.Domain = flagDomain })

	var seatsErr error
	overrideConfig(c, "seats", "VOTRIFY_SEATS", func() {
		opts.Config.Seats, seatsErr = strconv.Atoi(flagSeats)
	})
	if seatsErr != nil {
		return opts, "--seats", seatsErr
	}
	if opts.Config.Seats < 1 {
		return opts, "--seats", errors.New("must be positive")
	}

	if len(flagVoters) < 1 {
		return opts, "--voters", errors.New("must be given")
	}
	if common.IsNotExists(flagVoters) {
		return opts, "--voters", errors.New("file does not exist")
	}

	if err = flagFormat.Check(); err != nil {
		return opts, "--format", err
	}

	if len(args) < 1 {
		return opts, "<confirmation file>", errors.New("at least one confirmation file must be given")
	}

	opts.Voters = flagVoters
	opts.Format = flagFormat
	opts.Verbose = flagVerbose
	opts.Files = args

	log.Debug(
		"parsed flags:",
		"\n\tdomain", opts.Config.Domain,
		"\n\tvoters", opts.Voters,
		"\n\tseats", opts.Config.Seats,
		"\n\tformat", opts.Format,
		"\n\tfiles", strings.Join(opts.Files, " "),
	)

	return
}

func runVerify(opts verifyOptions, stdout, stderr io.Writer, colorizer cmdcommon.Colorizer) error {
	f, err := os.Open(opts.Voters)
	if err != nil {
		return err
	}
	roster, err := voter.ReadRoster(f, opts.Config.Domain)
	f.Close()
	if err != nil {
		return err
	}

	if opts.Verbose {
		progress := func(args ...interface{}) {
			fmt.Fprintln(stderr, args[0].(observer.Event).String())
		}
		observer.ConfirmationObserver.On(observer.EventConfirmationAccepted, progress)
		defer observer.ConfirmationObserver.Off(observer.EventConfirmationAccepted, progress)
	}

	engine := gpg.NewEngine(runner, opts.Config.GPGBinary, opts.Config.IdentityCacheSize)
	result, err := consensus.Collect(gpg.NewVerifier(engine, roster), roster, opts.Files)
	if err != nil {
		return err
	}

	report, err := consensus.NewReport(result, opts.Config.Seats)
	if err != nil {
		return err
	}
	log.Info("confirmations verified", "run", report.RunID, "voters", len(report.Voters), "roster", report.RosterSize)

	if encode := opts.Format.Encode(); encode != nil {
		return encode(report, stdout)
	}

	printReport(stdout, report, colorizer)

	return nil
}

var placementColors = map[consensus.Placement]cmdcommon.Color{
	consensus.PlacementElected:     cmdcommon.ColorGreen,
	consensus.PlacementBoundaryTie: cmdcommon.ColorYellow,
	consensus.PlacementNotElected:  cmdcommon.ColorBrown,
}

func printReport(w io.Writer, report consensus.Report, colorizer cmdcommon.Colorizer) {
	fmt.Fprintf(
		w,
		"Verified %s out of %s known voters.\n",
		colorizer.Paint(cmdcommon.ColorBold, strconv.Itoa(len(report.Voters))),
		colorizer.Paint(cmdcommon.ColorBold, strconv.Itoa(report.RosterSize)),
	)

	percentage := colorizer.Paint(cmdcommon.PercentageColor(report.Verified), report.Percentage())
	if !report.HasResults() {
		fmt.Fprintf(w, "The %s verified confirmations agree on master ballot %s.\n", percentage, report.MasterHash)
		return
	}

	fmt.Fprintf(w, "The %s verified election results are:\n", percentage)
	for _, g := range report.Results {
		fmt.Fprintln(w, colorizer.Paint(placementColors[g.Placement], strings.Join(g.Candidates, " ")))
	}
}
