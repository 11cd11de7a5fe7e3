package dto

// SummaryStat is one headline figure on a report
type SummaryStat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ReportData is the common shape every report type produces: a handful of
// summary stats plus a tabular row-set.
type ReportData struct {
	Title      string        `json:"title"`
	Period     string        `json:"period"`
	Summary    []SummaryStat `json:"summary"`
	Headers    []string      `json:"headers"`
	Rows       [][]string    `json:"rows"`
	ShowChart  bool          `json:"showChart"`
	ChartTitle string        `json:"chartTitle,omitempty"`
}

// DashboardResponse bundles the landing-page statistics
type DashboardResponse struct {
	TotalEmployees  int64       `json:"totalEmployees"`
	AttendanceRate  int         `json:"attendanceRate"`
	PendingLeaves   int64       `json:"pendingLeaves"`
	TotalPayroll    float64     `json:"totalPayroll"`
	TodayAttendance interface{} `json:"todayAttendance,omitempty"`
	LeaveBalances   interface{} `json:"leaveBalances,omitempty"`
	RecentPayslips  interface{} `json:"recentPayslips,omitempty"`
}
