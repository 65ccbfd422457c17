package report_fx

import (
	"go.uber.org/fx"
	"gymgate/internal/repositories"
	"gymgate/internal/services"
)

var Module = fx.Provide(provideReportService)

func provideReportService(memberRepo repositories.MemberRepository) services.ReportServiceInterface {
	return services.NewReportService(memberRepo)
}
