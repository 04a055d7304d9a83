package services

// statsService derives summaries by querying the ledger and directory and
// folding the results with the pure aggregation functions. It holds no state
// of its own.
type statsService struct {
	ledger    LedgerServicer
	directory DirectoryServicer
}

// NewStatsService creates a new StatsServicer.
func NewStatsService(ledger LedgerServicer, directory DirectoryServicer) StatsServicer {
	return &statsService{ledger: ledger, directory: directory}
}

// UserSummary aggregates the income, expense, and net totals of one user.
func (s *statsService) UserSummary(handle string) (Summary, error) {
	transactions, err := s.ledger.All(Filter{OwnerHandle: &handle})
	if err != nil {
		return Summary{}, err
	}
	return Summarize(transactions), nil
}

// SystemSummary aggregates user count, transaction count, and net total
// across the whole system.
func (s *statsService) SystemSummary() (SystemSummary, error) {
	transactions, err := s.ledger.All(Filter{})
	if err != nil {
		return SystemSummary{}, err
	}
	userCount, err := s.directory.CountUsers()
	if err != nil {
		return SystemSummary{}, err
	}
	return SummarizeSystem(transactions, userCount), nil
}
