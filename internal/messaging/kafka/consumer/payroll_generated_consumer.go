package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go-payroll/internal/employee"
	"go-payroll/internal/events"
	"go-payroll/internal/payroll"
	"go-payroll/internal/report"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// PayslipWriter renders a payslip PDF for every generated payroll and drops
// it in the output directory.
type PayslipWriter struct {
	payrollRepo  payroll.Repository
	employeeRepo employee.Repository
	renderer     report.Renderer
	outDir       string
}

func NewPayslipWriter(
	payrollRepo payroll.Repository,
	employeeRepo employee.Repository,
	renderer report.Renderer,
	outDir string,
) *PayslipWriter {
	return &PayslipWriter{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		renderer:     renderer,
		outDir:       outDir,
	}
}

func ConsumePayrollGenerated(
	ctx context.Context,
	reader *kafkago.Reader,
	writer *PayslipWriter,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_generated")
	log.Info("payroll generated consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll generated consumer stopped")
				return
			}
			log.Error("fetch payroll generated message failed", zap.Error(err))
			continue
		}

		var event events.PayrollGeneratedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payroll_generated event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		path, err := writer.Write(ctx, event)
		if err != nil {
			log.Error("write payslip failed",
				zap.String("payroll_id", event.PayrollID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payroll generated message failed", zap.Error(err))
			continue
		}

		log.Info("payslip written",
			zap.String("payroll_id", event.PayrollID),
			zap.String("path", path),
		)
	}
}

func (w *PayslipWriter) Write(ctx context.Context, event events.PayrollGeneratedEvent) (string, error) {
	pr, err := w.payrollRepo.FindByID(ctx, event.PayrollID)
	if err != nil {
		return "", fmt.Errorf("load payroll %s: %w", event.PayrollID, err)
	}

	empl, err := w.employeeRepo.FindByID(ctx, pr.EmployeeID.String())
	if err != nil {
		return "", fmt.Errorf("load employee %s: %w", pr.EmployeeID, err)
	}

	monthLabel := time.Date(pr.Year, time.Month(pr.Month), 1, 0, 0, 0, 0, time.UTC).
		Format("January 2006")

	payload, err := w.renderer.Payslip(report.PayslipData{
		EmployeeName:   empl.Name,
		EmployeeNumber: empl.EmployeeNumber,
		Designation:    empl.Designation,
		MonthLabel:     monthLabel,
		AttendanceDays: pr.AttendanceDays,
		NetSalary:      pr.NetSalary,
	})
	if err != nil {
		return "", fmt.Errorf("render payslip: %w", err)
	}

	if err := os.MkdirAll(w.outDir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(w.outDir, fmt.Sprintf("Payslip_%s.pdf", event.PayrollID))
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
