package contestconst

const (
	// StatusSetup is the status of a created but not yet funded contest.
	StatusSetup = 0
	// StatusActive is the status of a funded contest.
	StatusActive = 1
	// StatusCompleted is the terminal status of a contest whose prize has
	// been distributed.
	StatusCompleted = 2
	// StatusReclaimed is the terminal status of a contest whose escrow has
	// been returned to the creator.
	StatusReclaimed = 3

	// DefaultGracePeriod is the time after the submission deadline upon
	// which the creator may reclaim escrowed funds, in milliseconds. It is
	// used unless a deployment overrides it.
	DefaultGracePeriod = 30 * 24 * 3600 * 1000

	// NotFoundError is returned if the contest is missing.
	NotFoundError = "contest does not exist"
	// SubmissionNotFoundError is returned if the submission is missing.
	SubmissionNotFoundError = "submission does not exist"

	// ErrInvalidDeadline is returned on creation with a submission deadline
	// that is not in the future.
	ErrInvalidDeadline = "invalid deadline"
	// ErrInvalidThreshold is returned on creation with an empty judge set or
	// a vote threshold outside [1, len(judges)].
	ErrInvalidThreshold = "invalid vote threshold"
	// ErrInvalidURL is returned when a submission URL has a disallowed
	// scheme.
	ErrInvalidURL = "invalid submission url"
	// ErrInvalidPrizeAmount is returned on creation with a negative prize.
	ErrInvalidPrizeAmount = "invalid prize amount"
	// ErrInvalidBudget is returned when enabling sponsorship with a negative
	// budget.
	ErrInvalidBudget = "invalid sponsorship budget"

	// ErrUnauthorizedCreator is returned when a creator-only method is not
	// witnessed by the contest creator.
	ErrUnauthorizedCreator = "creator witness check failed"
	// ErrUnauthorizedParticipant is returned when a submission method is not
	// witnessed by the participant.
	ErrUnauthorizedParticipant = "participant witness check failed"
	// ErrUnauthorizedJudge is returned when a vote is not witnessed by a
	// member of the contest judge set.
	ErrUnauthorizedJudge = "caller is not a contest judge"

	// ErrAlreadyFunded is returned on repeated funding.
	ErrAlreadyFunded = "contest is already funded"
	// ErrInvalidContestState is returned when the contest status or the
	// current time does not permit the operation.
	ErrInvalidContestState = "invalid contest state"
	// ErrContestNotExpired is returned on reclamation before the grace
	// period has elapsed.
	ErrContestNotExpired = "contest is not expired"
	// ErrInvalidWinner is returned when the supplied winner does not match
	// the unique tally maximum or the maximum is below the threshold.
	ErrInvalidWinner = "invalid winner"
	// ErrVotingNotOpen is returned on votes cast before the submission
	// deadline.
	ErrVotingNotOpen = "voting is not open yet"

	// ErrDuplicateContest is returned on creation over an existing record.
	ErrDuplicateContest = "contest already exists"
	// ErrDuplicateSubmission is returned on repeated entry submission.
	ErrDuplicateSubmission = "submission already exists"
	// ErrDuplicateVote is returned on repeated vote by the same judge.
	ErrDuplicateVote = "judge has already voted"
)
