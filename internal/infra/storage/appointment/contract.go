package appointment

import (
	"github.com/viamente/booking-service/pkg/dbmetrics"
)

// Reuse the dbmetrics executor interface so the repository works over
// *sql.DB and the metrics wrapper alike.
type DBExecutor = dbmetrics.DBExecutor
