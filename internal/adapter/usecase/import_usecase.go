package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"adlift/internal/core/csvmap"
	"adlift/internal/core/domain"
	"adlift/internal/core/enums"
	"adlift/internal/core/port"
)

const (
	defaultLogLimit = 50
	maxLogLimit     = 500
)

// ImportUseCase implements port.CampaignImporter. It ties the CSV
// pipeline together: decode, normalize, map enums, validate, then run
// the creation chain per surviving campaign, logging each attempt.
type ImportUseCase struct {
	graph           port.GraphFactory
	logs            port.LogRepository
	logger          *slog.Logger
	strictPostCheck bool
}

// NewImportUseCase creates the use case with its outbound dependencies.
func NewImportUseCase(graph port.GraphFactory, logs port.LogRepository, logger *slog.Logger, strictPostCheck bool) *ImportUseCase {
	return &ImportUseCase{graph: graph, logs: logs, logger: logger, strictPostCheck: strictPostCheck}
}

// ImportCampaigns runs the full pipeline for one upload. Campaigns are
// processed strictly one after another: the remote API rate-limits per
// account and each campaign's chain is internally ordered anyway.
func (u *ImportUseCase) ImportCampaigns(ctx context.Context, req port.ImportReq) (*port.ImportResp, error) {
	headers, rows, err := csvmap.DecodeFile(req.Data)
	if err != nil {
		if errors.Is(err, csvmap.ErrEmptyFile) {
			return nil, &port.InputError{Msg: "uploaded file contains no data rows"}
		}
		return nil, &port.InputError{Msg: fmt.Sprintf("could not parse file: %v", err)}
	}
	if !csvmap.HasCampaignNameColumn(headers) {
		return nil, &port.InputError{Msg: "no campaign name column found in the file header"}
	}

	resp := &port.ImportResp{Results: []port.CampaignResult{}}
	var valid []csvmap.Candidate
	for _, c := range csvmap.NormalizeRows(rows) {
		c.Input = enums.AutoMap(c.Input)
		if rowErrs := csvmap.Validate(c); len(rowErrs) > 0 {
			// rows with any validation error never reach the remote API
			resp.ParseErrors = append(resp.ParseErrors, rowErrs...)
			continue
		}
		valid = append(valid, c)
	}
	if len(valid) == 0 {
		return resp, nil
	}

	api := u.graph.Client(port.Credentials{
		AccountID:   req.AccountID,
		AccessToken: req.AccessToken,
		PageID:      req.PageID,
	})
	// Pre-flight token probe: with a bad token every campaign would fail
	// identically, so the whole batch is aborted before any attempt.
	if err = api.VerifyToken(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrInvalidToken, err)
	}

	orc := NewOrchestrator(api, u.logger, u.strictPostCheck)
	for _, c := range valid {
		resp.Results = append(resp.Results, u.runOne(ctx, orc, c.Input, req))
	}
	resp.TotalProcessed = len(resp.Results)
	for _, r := range resp.Results {
		if r.Status == "success" {
			resp.SuccessCount++
		} else {
			resp.ErrorCount++
		}
	}
	return resp, nil
}

// runOne creates one campaign, bracketed by a pending log entry and its
// terminal update. Log-store failures are logged and swallowed: the log
// is observability, not critical path.
func (u *ImportUseCase) runOne(ctx context.Context, orc *Orchestrator, in domain.CampaignInput, req port.ImportReq) port.CampaignResult {
	logID, logErr := u.logs.CreateLog(ctx, domain.CampaignLog{
		Name:        in.Name,
		Status:      domain.LogStatusPending,
		AccountID:   req.AccountID,
		UserID:      req.UserID,
		DailyBudget: in.DailyBudget,
	})
	if logErr != nil {
		u.logger.Error("failed to create pending log entry",
			slog.String("campaign", in.Name), slog.Any("error", logErr))
	}

	res := orc.Create(ctx, in)

	result := port.CampaignResult{
		Name:     in.Name,
		Status:   "success",
		Warnings: enums.CheckCompatibility(in.Objective, in.OptimizationGoal),
	}
	upd := port.LogUpdate{Status: domain.LogStatusSuccess, FacebookIDs: res.IDs()}
	if res.Failed() {
		result.Status = "error"
		result.Error = res.Error
		upd.Status = domain.LogStatusError
		upd.ErrorMessage = res.Error
	}
	if ids := res.IDs(); !ids.Empty() {
		result.FacebookIDs = &ids
	}
	if logErr == nil {
		result.LogID = logID.String()
		if _, err := u.logs.UpdateLog(ctx, logID, upd); err != nil {
			u.logger.Error("failed to update log entry",
				slog.String("campaign", in.Name), slog.Any("error", err))
		}
	}
	return result
}

// ListLogs returns recent campaign logs with the given status.
func (u *ImportUseCase) ListLogs(ctx context.Context, status domain.LogStatus, limit int) ([]domain.CampaignLog, error) {
	if limit <= 0 {
		limit = defaultLogLimit
	}
	if limit > maxLogLimit {
		limit = maxLogLimit
	}
	return u.logs.GetLogsByStatus(ctx, status, limit)
}

// AccountInsights passes through aggregated spend for an account.
func (u *ImportUseCase) AccountInsights(ctx context.Context, creds port.Credentials, datePreset string) (*domain.Insights, error) {
	return u.graph.Client(creds).AccountInsights(ctx, datePreset)
}

var _ port.CampaignImporter = (*ImportUseCase)(nil)
