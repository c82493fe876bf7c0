package services

import (
	portsrepo "github.com/cashvault/cashvault_backend/internal/core/ports/repositories"
	portssvc "github.com/cashvault/cashvault_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Permission service first since the safe-scoped services depend on
	// its authorizer.
	container.Permission = NewPermissionService(repos.PermissionRepo, repos.SafeRepo, repos.UserRepo)
	authorizer := portssvc.SafeAuthorizerSvc(container.Permission)

	container.Safe = NewSafeService(repos.SafeRepo, repos.PermissionRepo, repos.UserRepo, authorizer)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.SafeRepo, authorizer)
	container.Dashboard = NewDashboardService(repos.TransactionRepo, authorizer)
	container.User = NewUserService(repos.UserRepo)
	container.Setup = NewSetupService(repos.UserRepo, repos.SafeRepo, repos.PermissionRepo)

	return container
}
