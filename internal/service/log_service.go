// FILE: internal/service/log_service.go
// Read-back over the zap log file for the admin log viewer.
package service

import (
	"context"

	"ai-character-admin-be/internal/pkg/logger"
)

type ILogService interface {
	GetLogs(ctx context.Context, page, limit int, level string) ([]logger.LogEntry, error)
	GetLogById(ctx context.Context, id string) (*logger.LogEntry, error)
}

type logService struct {
	logger logger.ILogger
}

func NewLogService(log logger.ILogger) ILogService {
	return &logService{logger: log}
}

func (s *logService) GetLogs(ctx context.Context, page, limit int, level string) ([]logger.LogEntry, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}
	offset := (page - 1) * limit
	return s.logger.GetLogs(level, limit, offset)
}

func (s *logService) GetLogById(ctx context.Context, id string) (*logger.LogEntry, error) {
	return s.logger.GetLogById(id)
}
