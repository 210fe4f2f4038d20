package tally

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/votrify/votrify/lib/common"
	votrifyerrors "github.com/votrify/votrify/lib/errors"
	"github.com/votrify/votrify/lib/vote"
)

const (
	// FinalRankedListMarker precedes the ranked groups in countify output.
	FinalRankedListMarker = "Final ranked list:"

	// ElectionName is the election countify is asked to rank; it only
	// names the files of the working area.
	ElectionName = "x"
)

// Scripts are copied from the scripts directory into the working area.
var Scripts = []string{"countify", "Votify.pm"}

// Engine drives countify, the external ranked-choice counting engine.
type Engine struct {
	runner     common.Runner
	perl       string
	scriptsDir string
}

func NewEngine(runner common.Runner, perl, scriptsDir string) *Engine {
	return &Engine{
		runner:     runner,
		perl:       perl,
		scriptsDir: scriptsDir,
	}
}

// Count ranks the election: ballot is the election ballot listing the
// candidates and master is the master ballot text. Countify runs in a
// throw-away working area which is removed afterwards.
func (e *Engine) Count(ballot, master []byte) (vote.Vote, error) {
	dir, err := ioutil.TempDir("", "votrify-countify")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create countify working area")
	}
	defer os.RemoveAll(dir)

	if err = e.prepare(dir, ballot, master); err != nil {
		return nil, err
	}

	cmd := common.Command{
		Name: e.perl,
		Args: []string{filepath.Join(dir, "countify"), "--rank", ElectionName},
		Env: []string{
			"HOME=" + dir,
			"PATH=" + os.Getenv("PATH"),
		},
	}

	log.Debug("running countify", "dir", dir, "scripts", e.scriptsDir)

	out, err := e.runner.Run(cmd)
	if err != nil {
		return nil, err
	}
	if out.ExitCode != 0 {
		return nil, votrifyerrors.CountingEngineFailed.Clone().
			SetData("exit-code", out.ExitCode).
			SetData("stderr", string(out.Stderr))
	}

	results, found := ParseOutput(out.Stdout)
	if !found {
		return nil, votrifyerrors.CountingEngineNoResults.Clone().
			SetData("stdout", string(out.Stdout))
	}

	log.Debug("countify finished", "groups", len(results), "candidates", results.Candidates())

	return results, nil
}

// prepare lays out the working area the way countify expects it:
//
//	<dir>/countify, <dir>/Votify.pm
//	<dir>/x/ballot-x
//	<dir>/results-x/master-x
func (e *Engine) prepare(dir string, ballot, master []byte) error {
	for _, d := range []string{ElectionName, "results-" + ElectionName} {
		if err := os.Mkdir(filepath.Join(dir, d), 0700); err != nil {
			return errors.Wrap(err, "failed to create countify working area")
		}
	}

	for _, name := range Scripts {
		if err := copyFile(filepath.Join(e.scriptsDir, name), filepath.Join(dir, name)); err != nil {
			return err
		}
	}

	files := map[string][]byte{
		filepath.Join(dir, ElectionName, "ballot-"+ElectionName):            ballot,
		filepath.Join(dir, "results-"+ElectionName, "master-"+ElectionName): master,
	}
	for path, b := range files {
		if err := ioutil.WriteFile(path, b, 0600); err != nil {
			return errors.Wrapf(err, "failed to write %s", filepath.Base(path))
		}
	}

	return nil
}

// ParseOutput returns the groups listed after FinalRankedListMarker.
// found is false when the marker is missing.
func ParseOutput(stdout []byte) (results vote.Vote, found bool) {
	for _, l := range common.SplitLines(stdout) {
		if !found {
			found = strings.TrimRight(l, " \t") == FinalRankedListMarker
			continue
		}

		if g := vote.NewGroup(l); len(g) > 0 {
			results = append(results, g)
		}
	}

	if found && results == nil {
		results = vote.Vote{}
	}

	return
}

func copyFile(src, dst string) error {
	b, err := ioutil.ReadFile(src)
	if err != nil {
		return errors.Wrap(err, "failed to read countify script")
	}

	if err = ioutil.WriteFile(dst, b, 0600); err != nil {
		return errors.Wrap(err, "failed to copy countify script "+strconv.Quote(filepath.Base(src)))
	}

	return nil
}
