package repositories

// RepositoryProvider holds all outbound sources needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ExchangeRateRepo ExchangeRateReader
	OrderRepo        OrderReader
	CustomerRepo     CustomerRepositoryFacade
}
