package repository

// Factory describes access to the domain repositories of one storage backend.
type Factory interface {
	Users() UserRepository
	Jobs() JobRepository
	Bids() BidRepository
	Orders() OrderRepository
	Transactions() TransactionRepository
	Quizzes() QuizRepository
	Stats() StatsRepository
}
