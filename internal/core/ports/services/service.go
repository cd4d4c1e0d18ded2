package services

// ServiceContainer holds instances of all the application services. Handlers
// receive this at route registration time.
type ServiceContainer struct {
	User        UserSvcFacade
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
	Account     AccountSvcFacade
	DebitCard   DebitCardSvcFacade
	Employee    EmployeeSvcFacade
	Vendor      VendorSvcFacade
	Payable     PayableSvcFacade
	Receivable  ReceivableSvcFacade
	Project     ProjectSvcFacade
	Asset       AssetSvcFacade
	Note        NoteSvcFacade
	Todo        TodoSvcFacade
}
