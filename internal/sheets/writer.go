package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Gabriel-Jesus3761/zops-funnel/internal/common"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// ReportWriter is the contract for funnel export destinations.
type ReportWriter interface {
	Write(ctx context.Context, report *FunnelReport) error
}

// Writer implements ReportWriter against the Google Sheets API.
type Writer struct {
	service *sheets.Service
	logger  *slog.Logger
	config  Config
}

// NewWriter creates a new Google Sheets report writer.
func NewWriter(ctx context.Context, config Config, logger *slog.Logger) (*Writer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	service, err := createSheetsService(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Writer{
		config:  config,
		service: service,
		logger:  logger,
	}, nil
}

// Write exports the report, replacing the sheet's previous contents.
func (w *Writer) Write(ctx context.Context, report *FunnelReport) error {
	w.logger.Info("starting funnel export",
		"deals", len(report.Deals),
		"categories", len(report.Summary))

	spreadsheetID, err := w.getOrCreateSpreadsheet(ctx)
	if err != nil {
		return fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	if clearErr := w.clearSheet(ctx, spreadsheetID); clearErr != nil {
		return fmt.Errorf("failed to clear sheet: %w", clearErr)
	}

	values := prepareReportData(report)

	retryOpts := common.RetryOptions{
		MaxAttempts:  w.config.RetryAttempts,
		InitialDelay: w.config.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}
	err = common.WithRetry(ctx, func() error {
		return w.writeData(ctx, spreadsheetID, values)
	}, retryOpts)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrExportFailed, err)
	}

	w.logger.Info("funnel export completed",
		"spreadsheet_id", spreadsheetID,
		"rows_written", len(values))
	return nil
}

// createSheetsService creates a Google Sheets API service using either a
// service account key or an OAuth2 refresh token.
func createSheetsService(ctx context.Context, config Config) (*sheets.Service, error) {
	var tokenSource oauth2.TokenSource

	if config.ServiceAccountPath != "" {
		jsonKey, err := os.ReadFile(config.ServiceAccountPath) // #nosec G304
		if err != nil {
			return nil, fmt.Errorf("unable to read service account key file: %w", err)
		}
		jwtConfig, err := google.JWTConfigFromJSON(jsonKey, sheets.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("unable to parse service account key: %w", err)
		}
		tokenSource = jwtConfig.TokenSource(ctx)
	} else {
		oauthConfig := &oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{sheets.SpreadsheetsScope},
		}
		token := &oauth2.Token{
			RefreshToken: config.RefreshToken,
			TokenType:    "Bearer",
		}
		tokenSource = oauthConfig.TokenSource(ctx, token)
	}

	httpClient := oauth2.NewClient(ctx, tokenSource)
	srv, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}
	return srv, nil
}

// getOrCreateSpreadsheet gets the configured spreadsheet or creates a new one.
func (w *Writer) getOrCreateSpreadsheet(ctx context.Context) (string, error) {
	if w.config.SpreadsheetID != "" {
		if _, err := w.service.Spreadsheets.Get(w.config.SpreadsheetID).Context(ctx).Do(); err != nil {
			return "", fmt.Errorf("unable to access spreadsheet %s: %w", w.config.SpreadsheetID, err)
		}
		return w.config.SpreadsheetID, nil
	}

	spreadsheet := &sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{
			Title:    w.config.SpreadsheetName,
			TimeZone: w.config.TimeZone,
		},
		Sheets: []*sheets.Sheet{
			{Properties: &sheets.SheetProperties{Title: "Funil"}},
		},
	}

	created, err := w.service.Spreadsheets.Create(spreadsheet).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("unable to create spreadsheet: %w", err)
	}

	w.logger.Info("created new spreadsheet",
		"id", created.SpreadsheetId,
		"url", created.SpreadsheetUrl)
	return created.SpreadsheetId, nil
}

// clearSheet clears all data from the sheet.
func (w *Writer) clearSheet(ctx context.Context, spreadsheetID string) error {
	_, err := w.service.Spreadsheets.Values.Clear(spreadsheetID, "A:Z", &sheets.ClearValuesRequest{}).Context(ctx).Do()
	return err
}

func (w *Writer) writeData(ctx context.Context, spreadsheetID string, values [][]any) error {
	vr := &sheets.ValueRange{Values: values}
	_, err := w.service.Spreadsheets.Values.Update(spreadsheetID, "A1", vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	return err
}

// prepareReportData flattens the report into sheet rows: title, per-category
// summary in funnel order, then the deal lines.
func prepareReportData(report *FunnelReport) [][]any {
	estimatedRows := 8 + len(report.Summary) + len(report.Deals)
	values := make([][]any, 0, estimatedRows)

	title := "Funil de Negócios"
	if report.Filtered {
		title += " (filtrado)"
	}
	values = append(values,
		[]any{title, report.GeneratedAt.Format("02/01/2006 15:04")},
		[]any{},
		[]any{"Resumo por Etapa"},
		[]any{"Etapa", "Negócios"},
	)

	for _, row := range report.Summary {
		values = append(values, []any{row.Category, row.Count})
	}

	values = append(values,
		[]any{"Total", report.Total},
		[]any{},
		[]any{"Negócios"},
		[]any{"Etapa", "Pipeline", "ID", "Nome", "Empresa", "CNPJ", "Cidade", "UF", "Criado em"},
	)

	for _, d := range report.Deals {
		values = append(values, []any{
			d.Category, d.Pipeline, d.DisplayID, d.Name,
			d.Company, d.CNPJ, d.City, d.State, d.CreatedAt,
		})
	}

	return values
}
