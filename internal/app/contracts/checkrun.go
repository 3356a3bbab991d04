package contracts

import (
	"context"
	"timetable-service/internal/app/models"
)

type CheckRunRepository interface {
	Insert(ctx context.Context, run *models.CheckRun) error
	FindRecent(ctx context.Context, page, pageSize int) ([]models.CheckRun, int, error)
}
