package loan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPeriod_ParsesCalendarDates(t *testing.T) {
	req := LoanReq{BookID: 1, CustomerID: 1, BeginDate: "2024-01-01", EndDate: "2024-01-15"}

	begin, end, err := req.Period()
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), begin)
	require.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), end)
}

func TestPeriod_RejectsTimestamps(t *testing.T) {
	req := LoanReq{BeginDate: "2024-01-01T10:00:00Z", EndDate: "2024-01-15"}
	_, _, err := req.Period()
	require.Error(t, err)
}
