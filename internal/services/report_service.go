package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"gymgate/internal/repositories"
	"gymgate/pkg/utils"
)

type ReportServiceInterface interface {
	GenerateMemberReport(ctx context.Context) (*bytes.Buffer, error)
}

type ReportService struct {
	memberRepo repositories.MemberRepository
}

func NewReportService(memberRepo repositories.MemberRepository) ReportServiceInterface {
	return &ReportService{
		memberRepo: memberRepo,
	}
}

var reportHeaders = []string{
	"ID", "First Name", "Last Name", "Email", "Country Code",
	"Phone Number", "Gender", "Membership Type", "Last Check In",
	"Remaining Days", "Next Payment", "Created At",
}

// GenerateMemberReport renders every member into an XLSX workbook.
func (r *ReportService) GenerateMemberReport(ctx context.Context) (*bytes.Buffer, error) {
	members, err := r.memberRepo.List(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Members"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create report sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, header := range reportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("write report header: %w", err)
		}
	}

	for row, member := range members {
		values := []interface{}{
			member.ID.String(),
			member.FirstName,
			member.LastName,
			member.Email,
			member.CountryCode,
			member.PhoneNumber,
			member.Gender,
			string(member.MembershipType),
			utils.FormatDate(member.LastCheckIn),
			member.RemainingDays,
			utils.FormatDate(member.NextPayment),
			utils.FormatDate(member.CreatedAt),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("write report row: %w", err)
			}
		}
	}

	return f.WriteToBuffer()
}
