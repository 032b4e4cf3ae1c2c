package constants

// Redis key formats
const (
	// KeyTransactionList caches one page of list results.
	// Format: transaction:list:{cacheKey}
	KeyTransactionList = "transaction:list:%s"

	// KeyTransactionListPattern matches every cached list page; used for
	// full invalidation after a mutation.
	KeyTransactionListPattern = "transaction:list:*"
)
