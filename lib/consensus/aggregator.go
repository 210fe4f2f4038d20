package consensus

import (
	logging "github.com/inconshreveable/log15"

	"github.com/votrify/votrify/lib/common"
	"github.com/votrify/votrify/lib/common/observer"
	"github.com/votrify/votrify/lib/confirmation"
	"github.com/votrify/votrify/lib/errors"
	"github.com/votrify/votrify/lib/gpg"
	"github.com/votrify/votrify/lib/vote"
)

// Roster is the set of eligible voters; voter.Roster is one.
type Roster interface {
	Has(email string) bool
	Len() int
}

// Verifier checks the signature of one confirmation file; gpg.Verifier is
// one.
type Verifier interface {
	Verify(path string) (gpg.SignatureRecord, []byte, error)
}

// DefaultCheckerFuncs are run, in order, for every added confirmation.
var DefaultCheckerFuncs = []common.CheckerFunc{
	CheckRosterVoter,
	CheckDuplicateVoter,
	CheckMasterHash,
	CheckResults,
	RecordConfirmation,
}

// Aggregator folds verified confirmations into one result. Any
// disagreement is reported as soon as the offending confirmation is
// added. An Aggregator is not safe for concurrent use.
type Aggregator struct {
	roster       Roster
	checkerFuncs []common.CheckerFunc
	log          logging.Logger

	voters     map[string]string // voter -> confirmation file
	order      []string
	masterHash string
	resultsKey string
	results    confirmation.Document
}

func NewAggregator(roster Roster) *Aggregator {
	return &Aggregator{
		roster:       roster,
		checkerFuncs: DefaultCheckerFuncs,
		log:          log.New(logging.Ctx{"run": common.GenerateUUID()}),
		voters:       map[string]string{},
	}
}

// Add checks and records the confirmation read from source.
func (a *Aggregator) Add(source string, record gpg.SignatureRecord, doc confirmation.Document) error {
	checker := &ConfirmationChecker{
		DefaultChecker: common.DefaultChecker{Funcs: a.checkerFuncs},
		Aggregator:     a,
		Source:         source,
		Record:         record,
		Document:       doc,
		Log:            a.log.New(logging.Ctx{"file": source}),
	}

	if err := common.RunChecker(checker, common.DefaultDeferFunc); err != nil {
		checker.Log.Debug("confirmation rejected", "error", err)

		ev := observer.NewEvent(source, record.Identity)
		ev.Error = err
		observer.ConfirmationObserver.Trigger(observer.EventConfirmationRejected, ev)

		return err
	}

	observer.ConfirmationObserver.Trigger(observer.EventConfirmationAccepted, observer.NewEvent(source, record.Identity))

	return nil
}

// AddFile verifies the confirmation file at path and adds it.
func (a *Aggregator) AddFile(verifier Verifier, path string) error {
	record, payload, err := verifier.Verify(path)
	if err != nil {
		return err
	}

	doc, err := confirmation.ParseDocument(payload)
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			e.SetData("file", path)
		}
		return err
	}

	return a.Add(path, record, doc)
}

// Result is the agreed outcome of the confirmations added so far.
type Result struct {
	Voters     []string
	RosterSize int
	MasterHash string
	Results    *vote.Vote // nil when the confirmations carry no results
}

// Fraction of the roster that confirmed.
func (r Result) Fraction() float64 {
	if r.RosterSize < 1 {
		return 0
	}

	return float64(len(r.Voters)) / float64(r.RosterSize)
}

// Result fails when no confirmation was added.
func (a *Aggregator) Result() (Result, error) {
	if len(a.order) < 1 {
		return Result{}, errors.NoConfirmations.Clone()
	}

	r := Result{
		Voters:     make([]string, len(a.order)),
		RosterSize: a.roster.Len(),
		MasterHash: a.masterHash,
	}
	copy(r.Voters, a.order)

	if a.results.HasResults() {
		results := vote.SortGroups(*a.results.Results)
		r.Results = &results
	}

	a.log.Debug("confirmations aggregated", "voters", len(r.Voters), "roster", r.RosterSize)

	return r, nil
}

// Collect verifies and aggregates every file of paths; the first failure
// aborts.
func Collect(verifier Verifier, roster Roster, paths []string) (Result, error) {
	a := NewAggregator(roster)
	for _, path := range paths {
		if err := a.AddFile(verifier, path); err != nil {
			return Result{}, err
		}
	}

	return a.Result()
}
