package errors

// input-format errors
var (
	InvalidConfirmationID       = NewError(100, "confirmation id must be exactly 4 hexadecimal digits")
	InvalidMasterBallot         = NewError(101, "master ballot is not valid UTF-8 text")
	InvalidConfirmationDocument = NewError(102, "confirmation payload is not a valid confirmation document")
	EmptyRoster                 = NewError(103, "voter roster has no entries")
	InvalidSeats                = NewError(104, "seat count must be positive")
)

// verification mismatches
var (
	VoteNotFound = NewError(200, "no vote found for this confirmation id")
	VoteMismatch = NewError(201, "vote mismatch found (old = vote recorded, new = your vote)")
)

// external tool failures
var (
	CountingEngineFailed    = NewError(300, "counting engine failed")
	CountingEngineNoResults = NewError(301, "final ranked list not found in counting engine output")
	SigningFailed           = NewError(302, "signature engine failed to sign the confirmation")
	SignatureVerifyFailed   = NewError(303, "signature engine failed to verify the confirmation")
	SignatureNotFound       = NewError(304, "signature engine did not find a good signature")
	SignatureMismatch       = NewError(305, "signature engine found mismatched signatures")
	KeyListingFailed        = NewError(306, "signature engine failed to list the signing key")
)

// consensus failures
var (
	NoEligibleVoter    = NewError(400, "no eligible voter found for the signing key")
	DuplicateVoter     = NewError(401, "duplicate confirmation file for voter")
	NotRosterVoter     = NewError(402, "confirmation is not signed by an eligible voter")
	MasterHashDisagree = NewError(403, "different ballot hashes in confirmations found")
	ResultsDisagree    = NewError(404, "different results in confirmations found")
	NoConfirmations    = NewError(405, "no confirmations were processed")
)
