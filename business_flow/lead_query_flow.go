// Package businessflow contains the core business logic and use cases for lead intake and admin workflows
package businessflow

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/verdelease/leasing-api/app/dto"
	"github.com/verdelease/leasing-api/models"
	"github.com/verdelease/leasing-api/repository"
	"github.com/xuri/excelize/v2"
)

const (
	leadListCacheKey     = "leasing:admin:simulations:first_page"
	defaultLeadListLimit = 50
	maxLeadListLimit     = 500
)

// LeadQueryFlow represents the admin lead listing flow used by handlers
type LeadQueryFlow interface {
	List(ctx context.Context, req *dto.SimulationListRequest, metadata *ClientMetadata) (*dto.SimulationListResponse, error)
	ExportXLSX(ctx context.Context, metadata *ClientMetadata) (string, []byte, error)
}

// LeadQueryFlowImpl serves stored simulations to authenticated admins, newest first
type LeadQueryFlowImpl struct {
	leadRepo repository.LeadRepository
	rc       *redis.Client
}

func NewLeadQueryFlow(leadRepo repository.LeadRepository, rc *redis.Client) LeadQueryFlow {
	return &LeadQueryFlowImpl{
		leadRepo: leadRepo,
		rc:       rc,
	}
}

func (lf *LeadQueryFlowImpl) List(ctx context.Context, req *dto.SimulationListRequest, metadata *ClientMetadata) (*dto.SimulationListResponse, error) {
	limit := defaultLeadListLimit
	offset := 0
	if req != nil {
		if req.Limit > 0 {
			limit = req.Limit
		}
		if req.Offset > 0 {
			offset = req.Offset
		}
	}
	if limit > maxLeadListLimit {
		limit = maxLeadListLimit
	}

	// Only the default first page is cached
	cacheable := lf.rc != nil && limit == defaultLeadListLimit && offset == 0

	if cacheable {
		if bs, err := lf.rc.Get(ctx, leadListCacheKey).Bytes(); err == nil && len(bs) > 0 {
			var out dto.SimulationListResponse
			if err := json.Unmarshal(bs, &out); err == nil {
				return &out, nil
			}
		}
	}

	leads, err := lf.leadRepo.ListNewestFirst(ctx, limit, offset)
	if err != nil {
		return nil, NewBusinessError("LEAD_LIST_FAILED", "Failed to list simulations", err)
	}

	total, err := lf.leadRepo.Count(ctx, models.LeadFilter{})
	if err != nil {
		return nil, NewBusinessError("LEAD_COUNT_FAILED", "Failed to count simulations", err)
	}

	out := &dto.SimulationListResponse{
		Simulations: make([]dto.SimulationDTO, 0, len(leads)),
		Total:       total,
		Limit:       limit,
		Offset:      offset,
	}
	for _, lead := range leads {
		out.Simulations = append(out.Simulations, ToSimulationDTO(*lead))
	}

	if cacheable {
		if bs, err := json.Marshal(out); err == nil {
			_ = lf.rc.Set(ctx, leadListCacheKey, bs, 0).Err()
		}
	}

	return out, nil
}

// ExportXLSX writes every stored simulation to a single-sheet workbook,
// newest first, for offline review by the sales team.
func (lf *LeadQueryFlowImpl) ExportXLSX(ctx context.Context, metadata *ClientMetadata) (string, []byte, error) {
	leads, err := lf.leadRepo.ListNewestFirst(ctx, maxLeadListLimit, 0)
	if err != nil {
		return "", nil, NewBusinessError("LEAD_LIST_FAILED", "Failed to list simulations", err)
	}

	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	sheet := "simulations"
	xl.SetSheetName(xl.GetSheetName(0), sheet)

	header := []string{"id", "uuid", "created_at", "name", "email", "phone", "vehicle_id", "amount", "finance_percentage", "term", "income", "employment", "monthly_payment", "annual_rate"}
	_ = xl.SetSheetRow(sheet, "A1", &header)

	for ri, lead := range leads {
		record := []string{
			strconv.FormatUint(uint64(lead.ID), 10),
			lead.UUID.String(),
			lead.CreatedAt.UTC().Format(time.RFC3339),
			lead.Name,
			lead.Email,
			lead.Phone,
			lead.VehicleID,
			strconv.FormatFloat(lead.Amount, 'f', 2, 64),
			strconv.Itoa(lead.FinancePercentage),
			strconv.Itoa(lead.Term),
			strconv.FormatFloat(lead.Income, 'f', 2, 64),
			lead.Employment,
			strconv.FormatFloat(lead.MonthlyPayment, 'f', 2, 64),
			strconv.FormatFloat(lead.AnnualRate, 'f', 4, 64),
		}
		cellRef, _ := excelize.CoordinatesToCellName(1, ri+2)
		_ = xl.SetSheetRow(sheet, cellRef, &record)
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return "", nil, NewBusinessError("EXCEL_WRITE_ERROR", "Failed to write Excel file", err)
	}
	filename := fmt.Sprintf("simulations_%s.xlsx", time.Now().UTC().Format("20060102_150405"))
	return filename, buf.Bytes(), nil
}
