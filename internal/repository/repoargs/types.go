package repoargs

type RepositoryName string

const (
	UserRepoName   RepositoryName = "user"
	LedgerRepoName RepositoryName = "ledger"
)
