package club

import "github.com/m04kA/Arena-BookingService/pkg/dbmetrics"

// Переиспользуем интерфейс исполнителя запросов из dbmetrics
type DBExecutor = dbmetrics.DBExecutor
