package services

// ServiceContainer holds all the services the presentation layer consumes.
type ServiceContainer struct {
	Transaction TransactionSvcFacade
	Analytics   AnalyticsSvc
	Feed        TransactionFeedSvc
}
