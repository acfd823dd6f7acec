package services

// ServiceContainer holds instances of all the job services.
// It is the entry point the handlers use to reach service functionality.
type ServiceContainer struct {
	OrderAggregation OrderAggregationSvc
	Customer         CustomerSvcFacade
}
