package quick_book

import (
	"context"

	quickBook "github.com/viamente/booking-service/internal/usecase/quick_book"
)

type QuickBookUseCase interface {
	Execute(ctx context.Context, req *quickBook.Request) (*quickBook.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
