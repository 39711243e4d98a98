package sheets

import "context"

// MockWriter captures reports for tests.
type MockWriter struct {
	Reports []*FunnelReport
	Err     error
}

// Write implements ReportWriter.
func (m *MockWriter) Write(_ context.Context, report *FunnelReport) error {
	if m.Err != nil {
		return m.Err
	}
	m.Reports = append(m.Reports, report)
	return nil
}

var _ ReportWriter = (*MockWriter)(nil)
