package cmd

import (
	"errors"
	"io"
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"

	cmdcommon "github.com/votrify/votrify/cmd/votrify/common"
	"github.com/votrify/votrify/lib/ballot"
	"github.com/votrify/votrify/lib/common"
	"github.com/votrify/votrify/lib/confirmation"
	"github.com/votrify/votrify/lib/gpg"
	"github.com/votrify/votrify/lib/tally"
	"github.com/votrify/votrify/lib/vote"
)

const stdoutFile = "-"

var (
	flagConfirmationID string
	flagMaster         string
	flagVote           string
	flagBallot         string
	flagKeyID          string = common.GetENVValue("VOTRIFY_KEY_ID", "")
	flagOutputFile     string = stdoutFile
	flagScripts        string = common.GetENVValue("VOTRIFY_SCRIPTS", common.DefaultScriptsDir)
	flagPerl           string = common.GetENVValue("VOTRIFY_PERL", common.DefaultPerlBinary)
	flagLightweight    bool
)

var confirmCmd *cobra.Command

type confirmOptions struct {
	Config         common.Config
	ConfirmationID ballot.ConfirmationID
	MasterFile     string
	VoteFile       string
	BallotFile     string
	KeyID          string
	OutputFile     string
	Lightweight    bool
}

func init() {
	confirmCmd = &cobra.Command{
		Use:   "confirm",
		Short: "Check your vote in the master ballot and sign a confirmation",
		Run: func(c *cobra.Command, args []string) {
			opts, flagName, err := parseFlagsConfirm(c)
			if err != nil {
				cmdcommon.PrintFlagsError(c, flagName, err)
			}

			if err = runConfirm(opts, os.Stdout); err != nil {
				cmdcommon.PrintError(c, err)
			}
		},
	}

	confirmCmd.Flags().StringVarP(&flagConfirmationID, "confirmation-id", "c", flagConfirmationID, "your confirmation id")
	confirmCmd.Flags().StringVarP(&flagMaster, "master", "m", flagMaster, "master ballot file")
	confirmCmd.Flags().StringVarP(&flagVote, "vote", "v", flagVote, "your vote file")
	confirmCmd.Flags().StringVarP(&flagBallot, "ballot", "b", flagBallot, "election ballot file")
	confirmCmd.Flags().StringVarP(&flagKeyID, "key-id", "k", flagKeyID, "key used for signing, passed to gpg")
	confirmCmd.Flags().StringVarP(&flagOutputFile, "output-file", "o", flagOutputFile, "file to write the confirmation into, '-' for stdout")
	confirmCmd.Flags().StringVarP(&flagScripts, "scripts", "s", flagScripts, "directory with countify and Votify.pm")
	confirmCmd.Flags().StringVar(&flagPerl, "perl", flagPerl, "perl executable running countify")
	confirmCmd.Flags().BoolVar(&flagLightweight, "lightweight", flagLightweight, "skip counting; the confirmation carries no results")

	confirmCmd.MarkFlagRequired("confirmation-id")
	confirmCmd.MarkFlagRequired("master")
	confirmCmd.MarkFlagRequired("vote")

	rootCmd.AddCommand(confirmCmd)
}

func parseFlagsConfirm(c *cobra.Command) (opts confirmOptions, flagName string, err error) {
	if opts.Config, err = loadConfig(c); err != nil {
		flagName = "--config"
		return
	}
	overrideConfig(c, "scripts", "VOTRIFY_SCRIPTS", func() { opts.Config.ScriptsDir = flagScripts })
	overrideConfig(c, "perl", "VOTRIFY_PERL", func() { opts.Config.PerlBinary = flagPerl })

	if opts.ConfirmationID, err = ballot.ParseConfirmationID(flagConfirmationID); err != nil {
		flagName = "--confirmation-id"
		return
	}

	for _, f := range [][2]string{{"--master", flagMaster}, {"--vote", flagVote}} {
		if len(f[1]) < 1 {
			return opts, f[0], errors.New("must be given")
		}
		if common.IsNotExists(f[1]) {
			return opts, f[0], errors.New("file does not exist")
		}
	}

	if !flagLightweight {
		if len(flagBallot) < 1 {
			return opts, "--ballot", errors.New("must be given unless --lightweight")
		}
		if common.IsNotExists(flagBallot) {
			return opts, "--ballot", errors.New("file does not exist")
		}
	}

	opts.MasterFile = flagMaster
	opts.VoteFile = flagVote
	opts.BallotFile = flagBallot
	opts.KeyID = flagKeyID
	opts.OutputFile = flagOutputFile
	opts.Lightweight = flagLightweight

	log.Debug(
		"parsed flags:",
		"\n\tconfirmation-id", opts.ConfirmationID,
		"\n\tmaster", opts.MasterFile,
		"\n\tvote", opts.VoteFile,
		"\n\tballot", opts.BallotFile,
		"\n\tkey-id", opts.KeyID,
		"\n\toutput-file", opts.OutputFile,
		"\n\tscripts", opts.Config.ScriptsDir,
		"\n\tlightweight", opts.Lightweight,
	)

	return
}

func runConfirm(opts confirmOptions, stdout io.Writer) error {
	master, err := readMaster(opts.MasterFile)
	if err != nil {
		return err
	}

	v, err := readVote(opts.VoteFile)
	if err != nil {
		return err
	}

	req := confirmation.Request{
		ConfirmationID: opts.ConfirmationID,
		Master:         master,
		Vote:           v,
		KeyID:          opts.KeyID,
	}

	var counter confirmation.Counter
	if !opts.Lightweight {
		if req.Ballot, err = ioutil.ReadFile(opts.BallotFile); err != nil {
			return err
		}
		counter = tally.NewEngine(runner, opts.Config.PerlBinary, opts.Config.ScriptsDir)
	}

	signer := gpg.NewEngine(runner, opts.Config.GPGBinary, opts.Config.IdentityCacheSize)
	builder := confirmation.NewBuilder(signer, counter, opts.Config.ConfirmationComment)

	signed, _, err := builder.Confirm(req)
	if err != nil {
		return err
	}

	if opts.OutputFile == stdoutFile || len(opts.OutputFile) < 1 {
		_, err = stdout.Write(signed)
		return err
	}

	if err = ioutil.WriteFile(opts.OutputFile, signed, 0644); err != nil {
		return err
	}
	log.Info("confirmation written", "file", opts.OutputFile)

	return nil
}

func readMaster(path string) (*ballot.Master, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ballot.ReadMaster(f)
}

func readVote(path string) (vote.Vote, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return vote.Parse(f)
}
