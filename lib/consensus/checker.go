/*
	The checkers of this file decide whether one verified confirmation can
	be folded into the running result of an Aggregator. They are called
	sequentially by RunChecker() in Aggregator.Add():
	1. CheckRosterVoter: the signer resolved to an eligible voter
	2. CheckDuplicateVoter: the voter has not confirmed yet
	3. CheckMasterHash: the master ballot hash agrees with the earlier ones
	4. CheckResults: the results agree with the earlier ones
	5. RecordConfirmation: store the voter, the hash and the results
*/

package consensus

import (
	logging "github.com/inconshreveable/log15"

	"github.com/votrify/votrify/lib/common"
	"github.com/votrify/votrify/lib/confirmation"
	"github.com/votrify/votrify/lib/errors"
	"github.com/votrify/votrify/lib/gpg"
)

// noResultsKey stands for the results of lightweight confirmations. It can
// not collide with a results key, which is a JSON array.
const noResultsKey = "<no results>"

type ConfirmationChecker struct {
	common.DefaultChecker

	Aggregator *Aggregator
	Source     string
	Record     gpg.SignatureRecord
	Document   confirmation.Document
	Log        logging.Logger
}

func resultsKey(d confirmation.Document) string {
	if !d.HasResults() {
		return noResultsKey
	}

	return d.ResultsKey()
}

// CheckRosterVoter checks the signature was resolved to a voter of the
// roster.
func CheckRosterVoter(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*ConfirmationChecker)

	if len(checker.Record.Identity) < 1 || !checker.Aggregator.roster.Has(checker.Record.Identity) {
		err = errors.NotRosterVoter.Clone().
			SetData("file", checker.Source).
			SetData("voter", checker.Record.Identity)
		return
	}

	checker.Log = checker.Log.New(logging.Ctx{"voter": checker.Record.Identity})

	return
}

// CheckDuplicateVoter allows one confirmation per voter.
func CheckDuplicateVoter(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*ConfirmationChecker)

	if previous, found := checker.Aggregator.voters[checker.Record.Identity]; found {
		err = errors.DuplicateVoter.Clone().
			SetData("file", checker.Source).
			SetData("voter", checker.Record.Identity).
			SetData("previous-file", previous)
		return
	}

	return
}

// CheckMasterHash requires every confirmation to carry the hash of the
// first one.
func CheckMasterHash(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*ConfirmationChecker)
	a := checker.Aggregator

	if len(a.order) > 0 && a.masterHash != checker.Document.MasterHash {
		err = errors.MasterHashDisagree.Clone().
			SetData("file", checker.Source).
			SetData("expected", a.masterHash).
			SetData("found", checker.Document.MasterHash)
		return
	}

	return
}

// CheckResults requires every confirmation to carry the results of the
// first one. A confirmation without results only agrees with other
// confirmations without results.
func CheckResults(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*ConfirmationChecker)
	a := checker.Aggregator

	if len(a.order) > 0 && a.resultsKey != resultsKey(checker.Document) {
		err = errors.ResultsDisagree.Clone().
			SetData("file", checker.Source).
			SetData("expected", describeResults(a.results)).
			SetData("found", describeResults(checker.Document))
		return
	}

	return
}

// RecordConfirmation stores the accepted confirmation.
func RecordConfirmation(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*ConfirmationChecker)
	a := checker.Aggregator

	if len(a.order) < 1 {
		a.masterHash = checker.Document.MasterHash
		a.resultsKey = resultsKey(checker.Document)
		a.results = checker.Document
	}

	a.voters[checker.Record.Identity] = checker.Source
	a.order = append(a.order, checker.Record.Identity)

	checker.Log.Debug("confirmation accepted", "confirmations", len(a.order))

	return
}

func describeResults(d confirmation.Document) string {
	if !d.HasResults() {
		return "(no results)"
	}

	return d.Results.String() + "\n"
}
